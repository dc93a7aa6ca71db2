package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
)

// DeleteBookUseCase 删除图书用例
type DeleteBookUseCase struct {
	bookRepo book.Repository
}

// NewDeleteBookUseCase 创建删除图书用例
func NewDeleteBookUseCase(bookRepo book.Repository) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookRepo: bookRepo}
}

// Execute 删除图书(幂等:ID不存在也返回成功)
// 说明:软删除,历史借阅记录仍保留BookID外键
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	return uc.bookRepo.Delete(ctx, id)
}
