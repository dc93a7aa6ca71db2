package order

import (
	"context"
	"time"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/order"
	"github.com/xiebiao/library/internal/domain/student"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
)

// TxManager 事务边界抽象
// 由mysql.TxManager实现,接口定义在用例侧便于Mock测试
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// BorrowBookUseCase 借书用例
// 教学要点:这是整个项目最核心的用例
// 涉及:事务处理、并发控制、业务规则校验
type BorrowBookUseCase struct {
	orderRepo   order.Repository
	bookRepo    book.Repository
	studentRepo student.Repository
	txManager   TxManager
}

// NewBorrowBookUseCase 创建借书用例
func NewBorrowBookUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	studentRepo student.Repository,
	txManager TxManager,
) *BorrowBookUseCase {
	return &BorrowBookUseCase{
		orderRepo:   orderRepo,
		bookRepo:    bookRepo,
		studentRepo: studentRepo,
		txManager:   txManager,
	}
}

// BorrowBookRequest 借书请求DTO
type BorrowBookRequest struct {
	StudentID uint // 借书学生ID
	BookID    uint // 图书ID
}

// BorrowBookResponse 借书响应DTO
type BorrowBookResponse struct {
	OrderID    uint   `json:"order_id"`
	StudentID  uint   `json:"student_id"`
	BookID     uint   `json:"book_id"`
	BookTitle  string `json:"book_title"`
	BorrowedAt string `json:"borrowed_at"`
}

// Execute 执行借书用例
// 教学重点:防止库存超扣的完整流程
//
// 核心问题:最后一本书,多名学生同时借
// 错误实现:先查库存再判断再扣减,并发下多个请求都能通过判断
// 正确实现:悲观锁
//  1. SELECT FOR UPDATE 锁定图书行
//  2. 判断库存是否充足
//  3. 扣减库存(stock - 1)
//  4. 创建借阅记录
//  5. COMMIT释放锁
func (uc *BorrowBookUseCase) Execute(ctx context.Context, req BorrowBookRequest) (*BorrowBookResponse, error) {
	start := time.Now()

	var (
		result *order.Order
		title  string
	)
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 步骤1:校验学生存在
		// 学生不存在直接失败,不产生任何副作用
		if _, err := uc.studentRepo.FindByID(txCtx, req.StudentID); err != nil {
			return err
		}

		// 步骤2:锁定图书行(悲观锁,防止并发超扣)
		// LockByID执行:SELECT * FROM books WHERE id = ? FOR UPDATE
		b, err := uc.bookRepo.LockByID(txCtx, req.BookID)
		if err != nil {
			return err
		}

		// 步骤3:检查库存
		// 教学要点:必须在锁定后检查,否则可能并发扣减导致超扣
		if !b.Available() {
			return apperrors.Newf(apperrors.ErrCodeOutOfStock, "图书《%s》已无库存", b.Title)
		}
		title = b.Title

		// 步骤4:扣减库存(每次借书固定扣1本)
		// UpdateStock内部带stock + delta >= 0守卫,双重保险
		if err := uc.bookRepo.UpdateStock(txCtx, req.BookID, -1); err != nil {
			return err
		}

		// 步骤5:创建借阅记录(与扣库存同一事务,要么都成功要么都回滚)
		newOrder := order.NewOrder(req.StudentID, req.BookID)
		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		result = newOrder
		return nil
	})

	if err != nil {
		metrics.IncCounterVec(metrics.BorrowsFailedTotal, map[string]string{
			"reason": borrowFailReason(err),
		})
		return nil, err
	}

	metrics.IncCounter(metrics.BorrowsTotal)
	metrics.ObserveHistogram(metrics.BorrowDuration, time.Since(start).Seconds())

	return &BorrowBookResponse{
		OrderID:    result.ID,
		StudentID:  result.StudentID,
		BookID:     result.BookID,
		BookTitle:  title,
		BorrowedAt: result.BorrowedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// borrowFailReason 借书失败原因(指标label,低基数)
func borrowFailReason(err error) string {
	switch apperrors.GetAppError(err).Code {
	case apperrors.ErrCodeOutOfStock:
		return "out_of_stock"
	case apperrors.ErrCodeBookNotFound:
		return "book_not_found"
	case apperrors.ErrCodeStudentNotFound:
		return "student_not_found"
	default:
		return "other"
	}
}
