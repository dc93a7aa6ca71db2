package author

import (
	"context"
)

// Repository 作者仓储接口
type Repository interface {
	// FindAll 查询全部作者
	FindAll(ctx context.Context) ([]*Author, error)

	// FindByID 根据ID查找作者
	// 不存在时返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindByIDs 批量查找作者(部分匹配语义)
	// 只返回存在的作者;传入的ID无法解析时静默丢弃,由调用方检查结果是否为空
	FindByIDs(ctx context.Context, ids []uint) ([]*Author, error)

	// Save 保存作者(按ID upsert)
	Save(ctx context.Context, author *Author) error

	// Delete 删除作者(幂等)
	Delete(ctx context.Context, id uint) error
}
