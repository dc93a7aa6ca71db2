package order

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/order"
	"github.com/xiebiao/library/pkg/metrics"
)

// ReturnBookUseCase 还书用例
type ReturnBookUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	txManager TxManager
}

// NewReturnBookUseCase 创建还书用例
func NewReturnBookUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	txManager TxManager,
) *ReturnBookUseCase {
	return &ReturnBookUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
	}
}

// ReturnBookResponse 还书响应DTO
type ReturnBookResponse struct {
	OrderID    uint   `json:"order_id"`
	BookID     uint   `json:"book_id"`
	ReturnedAt string `json:"returned_at"`
}

// Execute 执行还书用例
// 流程(单事务):
//  1. 查找借阅记录
//  2. 领域校验:重复归还直接拒绝
//     (重复归还会导致库存被重复加回,库存虚高)
//  3. 库存加回1本
//  4. 写入归还时间
func (uc *ReturnBookUseCase) Execute(ctx context.Context, orderID uint) (*ReturnBookResponse, error) {
	var result *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		o, err := uc.orderRepo.FindByID(txCtx, orderID)
		if err != nil {
			return err
		}

		// Return内部守卫重复归还,返回ErrAlreadyReturned
		if err := o.Return(); err != nil {
			return err
		}

		if err := uc.bookRepo.UpdateStock(txCtx, o.BookID, 1); err != nil {
			return err
		}

		if err := uc.orderRepo.Update(txCtx, o); err != nil {
			return err
		}

		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.ReturnsTotal)

	return &ReturnBookResponse{
		OrderID:    result.ID,
		BookID:     result.BookID,
		ReturnedAt: result.ReturnedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
