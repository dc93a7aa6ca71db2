package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/metrics"
)

// UpdateCoverUseCase 更新封面用例
type UpdateCoverUseCase struct {
	bookRepo book.Repository
	covers   CoverStorage
}

// NewUpdateCoverUseCase 创建更新封面用例
func NewUpdateCoverUseCase(bookRepo book.Repository, covers CoverStorage) *UpdateCoverUseCase {
	return &UpdateCoverUseCase{
		bookRepo: bookRepo,
		covers:   covers,
	}
}

// UpdateCoverResponse 更新封面响应DTO
type UpdateCoverResponse struct {
	BookID   uint   `json:"book_id"`
	CoverURL string `json:"cover_url"`
}

// Execute 执行更新封面用例
// 流程:校验图书存在 → 上传新封面 → 写回封面URL
// 上传失败时不修改数据库,旧封面URL保持不变
func (uc *UpdateCoverUseCase) Execute(ctx context.Context, bookID uint, cover CoverFile) (*UpdateCoverResponse, error) {
	if _, err := uc.bookRepo.FindByID(ctx, bookID); err != nil {
		return nil, err
	}

	coverURL, err := uc.covers.Upload(ctx, cover.Filename, cover.ContentType, cover.Body)
	if err != nil {
		metrics.IncCounterVec(metrics.CoverUploadsTotal, map[string]string{"result": "failure"})
		return nil, err
	}
	metrics.IncCounterVec(metrics.CoverUploadsTotal, map[string]string{"result": "success"})

	if err := uc.bookRepo.UpdateCover(ctx, bookID, coverURL); err != nil {
		return nil, err
	}

	return &UpdateCoverResponse{
		BookID:   bookID,
		CoverURL: coverURL,
	}, nil
}
