package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 事务通过context传递(TxManager注入事务DB)
type Repository interface {
	// FindAll 查询全部图书(按ID升序)
	FindAll(ctx context.Context) ([]*Book, error)

	// FindByID 根据ID查找图书
	// 不存在时返回ErrBookNotFound,调用方用errors.Is分支判断
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByCategoryID 查询指定分类下的全部图书
	// 分类不存在或无匹配时返回空切片,不报错
	FindByCategoryID(ctx context.Context, categoryID uint) ([]*Book, error)

	// Save 保存图书(按ID upsert)
	// ID为0时插入并回填自增ID,否则更新全部字段与作者关联
	Save(ctx context.Context, book *Book) error

	// Delete 删除图书(软删除)
	// 幂等:ID不存在时不报错(对齐DELETE BY KEY语义)
	Delete(ctx context.Context, id uint) error

	// LockByID 悲观锁查询图书(借书事务中锁定库存行)
	// 使用SELECT FOR UPDATE,防止并发借书超扣库存
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateStock 更新库存(原子操作)
	// delta为正数表示增加,负数表示减少
	// 内部保证stock + delta >= 0,不足时返回ErrOutOfStock
	UpdateStock(ctx context.Context, id uint, delta int) error

	// UpdateCover 更新封面URL
	// 图书不存在时返回ErrBookNotFound
	UpdateCover(ctx context.Context, id uint, coverURL string) error
}
