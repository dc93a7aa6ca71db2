package category

import (
	"context"
)

// Repository 分类仓储接口
type Repository interface {
	// FindAll 查询全部分类
	FindAll(ctx context.Context) ([]*Category, error)

	// FindByID 根据ID查找分类
	// 不存在时返回ErrCategoryNotFound
	FindByID(ctx context.Context, id uint) (*Category, error)

	// Save 保存分类(按ID upsert)
	// 分类名重复时返回ErrNameDuplicate
	Save(ctx context.Context, category *Category) error

	// Delete 删除分类(幂等)
	Delete(ctx context.Context, id uint) error
}
