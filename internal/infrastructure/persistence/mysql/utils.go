package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 识别MySQL唯一索引冲突(错误码1062)
// 用户名、分类名、学号的唯一性都靠数据库唯一索引兜底,
// 各仓储在Save/Create中用它把驱动错误转换为领域错误
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 驱动未开启TranslateError时退化为错误信息匹配
	return strings.Contains(err.Error(), "Duplicate entry")
}
