package category

import (
	"time"
)

// Category 图书分类实体
// 与图书是一对多关系,分类名有数据库唯一索引
type Category struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory 创建新分类
func NewCategory(name string) *Category {
	now := time.Now()
	return &Category{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
