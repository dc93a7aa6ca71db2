package order

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/order"
	"github.com/xiebiao/library/internal/domain/student"
)

// ListOrdersUseCase 借阅记录查询用例
// 说明:借阅记录只存外键,展示所需的学生姓名和书名在这里显式拼装
type ListOrdersUseCase struct {
	orderRepo   order.Repository
	bookRepo    book.Repository
	studentRepo student.Repository
}

// NewListOrdersUseCase 创建借阅记录查询用例
func NewListOrdersUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	studentRepo student.Repository,
) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo:   orderRepo,
		bookRepo:    bookRepo,
		studentRepo: studentRepo,
	}
}

// OrderItem 借阅记录展示项
type OrderItem struct {
	OrderID     uint   `json:"order_id"`
	StudentID   uint   `json:"student_id"`
	StudentName string `json:"student_name"`
	BookID      uint   `json:"book_id"`
	BookTitle   string `json:"book_title"`
	BorrowedAt  string `json:"borrowed_at"`
	ReturnedAt  string `json:"returned_at,omitempty"` // 空字符串=未归还
}

// Execute 分页查询全部借阅记录(管理员视角)
func (uc *ListOrdersUseCase) Execute(ctx context.Context, page, pageSize int) ([]*OrderItem, int64, error) {
	orders, total, err := uc.orderRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	items, err := uc.assemble(ctx, orders)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ExecuteByStudent 查询某学生自己的借阅记录(学生视角)
func (uc *ListOrdersUseCase) ExecuteByStudent(ctx context.Context, studentID uint, page, pageSize int) ([]*OrderItem, int64, error) {
	orders, total, err := uc.orderRepo.ListByStudentID(ctx, studentID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	items, err := uc.assemble(ctx, orders)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// assemble 拼装展示字段
// 同一页内的学生/图书做本地缓存,避免逐行重复查询
func (uc *ListOrdersUseCase) assemble(ctx context.Context, orders []*order.Order) ([]*OrderItem, error) {
	studentNames := make(map[uint]string)
	bookTitles := make(map[uint]string)

	items := make([]*OrderItem, 0, len(orders))
	for _, o := range orders {
		name, ok := studentNames[o.StudentID]
		if !ok {
			s, err := uc.studentRepo.FindByID(ctx, o.StudentID)
			if err == nil {
				name = s.Name
			}
			// 学生已被删除时展示为空,不让整页查询失败
			studentNames[o.StudentID] = name
		}

		title, ok := bookTitles[o.BookID]
		if !ok {
			b, err := uc.bookRepo.FindByID(ctx, o.BookID)
			if err == nil {
				title = b.Title
			}
			bookTitles[o.BookID] = title
		}

		item := &OrderItem{
			OrderID:     o.ID,
			StudentID:   o.StudentID,
			StudentName: name,
			BookID:      o.BookID,
			BookTitle:   title,
			BorrowedAt:  o.BorrowedAt.Format("2006-01-02 15:04:05"),
		}
		if o.Returned() {
			item.ReturnedAt = o.ReturnedAt.Format("2006-01-02 15:04:05")
		}
		items = append(items, item)
	}

	return items, nil
}
