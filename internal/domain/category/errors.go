package category

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrNameDuplicate 分类名已存在(数据库唯一索引保证)
	ErrNameDuplicate = apperrors.New(apperrors.ErrCodeCategoryDuplicate, "分类名已存在")
)
