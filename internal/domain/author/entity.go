package author

import (
	"time"
)

// Author 作者实体
// 与图书是多对多关系,关联关系由图书侧维护(join表book_authors)
type Author struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAuthor 创建新作者
func NewAuthor(name string) *Author {
	now := time.Now()
	return &Author{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
