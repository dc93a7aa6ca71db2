package order

import (
	"context"
)

// Repository 借阅记录仓储接口
// 说明:借书/还书都是多步事务,所有方法必须支持从context取事务DB
type Repository interface {
	// Create 创建借阅记录
	// 必须与库存扣减在同一事务中执行
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找借阅记录
	// 不存在时返回ErrOrderNotFound
	FindByID(ctx context.Context, id uint) (*Order, error)

	// Update 更新借阅记录(写入归还时间)
	Update(ctx context.Context, order *Order) error

	// List 分页查询全部借阅记录(按借出时间降序)
	List(ctx context.Context, page, pageSize int) ([]*Order, int64, error)

	// ListByStudentID 查询某学生的借阅记录
	ListByStudentID(ctx context.Context, studentID uint, page, pageSize int) ([]*Order, int64, error)
}
