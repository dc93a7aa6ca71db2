package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/order"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// orderRepository 借阅记录仓储实现(MySQL)
// 借书/还书都在事务中调用,所有方法通过dbFromContext参与事务
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建借阅记录仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建借阅记录
// 必须与库存扣减在同一事务中执行
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建借阅记录失败")
	}

	// 回填自增ID
	o.ID = model.ID
	return nil
}

// FindByID 根据ID查找借阅记录
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	db := dbFromContext(ctx, r.db)

	err := db.First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询借阅记录失败")
	}

	return toOrderEntity(&model), nil
}

// Update 更新借阅记录(写入归还时间)
// BorrowedAt不可变,只更新returned_at
func (r *orderRepository) Update(ctx context.Context, o *order.Order) error {
	db := dbFromContext(ctx, r.db)

	result := db.Model(&OrderModel{}).
		Where("id = ?", o.ID).
		Update("returned_at", o.ReturnedAt)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新借阅记录失败")
	}

	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// List 分页查询全部借阅记录(按借出时间降序)
func (r *orderRepository) List(ctx context.Context, page, pageSize int) ([]*order.Order, int64, error) {
	db := dbFromContext(ctx, r.db)
	return r.list(db.Model(&OrderModel{}), page, pageSize)
}

// ListByStudentID 查询某学生的借阅记录
func (r *orderRepository) ListByStudentID(ctx context.Context, studentID uint, page, pageSize int) ([]*order.Order, int64, error) {
	db := dbFromContext(ctx, r.db)
	return r.list(db.Model(&OrderModel{}).Where("student_id = ?", studentID), page, pageSize)
}

// list 公共分页查询
func (r *orderRepository) list(query *gorm.DB, page, pageSize int) ([]*order.Order, int64, error) {
	var models []OrderModel
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询借阅记录总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.Order("borrowed_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询借阅记录列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, total, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toOrderModel 领域实体 → GORM模型
func toOrderModel(o *order.Order) *OrderModel {
	return &OrderModel{
		ID:         o.ID,
		StudentID:  o.StudentID,
		BookID:     o.BookID,
		BorrowedAt: o.BorrowedAt,
		ReturnedAt: o.ReturnedAt,
	}
}

// toOrderEntity GORM模型 → 领域实体
func toOrderEntity(model *OrderModel) *order.Order {
	return &order.Order{
		ID:         model.ID,
		StudentID:  model.StudentID,
		BookID:     model.BookID,
		BorrowedAt: model.BorrowedAt,
		ReturnedAt: model.ReturnedAt,
	}
}
