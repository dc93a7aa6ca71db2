package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/category"
)

// GetBookUseCase 图书详情用例
type GetBookUseCase struct {
	bookRepo     book.Repository
	authorRepo   author.Repository
	categoryRepo category.Repository
}

// NewGetBookUseCase 创建图书详情用例
func NewGetBookUseCase(
	bookRepo book.Repository,
	authorRepo author.Repository,
	categoryRepo category.Repository,
) *GetBookUseCase {
	return &GetBookUseCase{
		bookRepo:     bookRepo,
		authorRepo:   authorRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute 查询图书详情
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookItem, error) {
	b, err := uc.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	categoryName := ""
	if c, err := uc.categoryRepo.FindByID(ctx, b.CategoryID); err == nil {
		categoryName = c.Name
	}

	authors, err := uc.authorRepo.FindByIDs(ctx, b.AuthorIDs)
	if err != nil {
		return nil, err
	}
	authorNames := make([]string, len(authors))
	for i, a := range authors {
		authorNames[i] = a.Name
	}

	return &BookItem{
		BookID:       b.ID,
		Title:        b.Title,
		Stock:        b.Stock,
		CoverURL:     b.CoverURL,
		CategoryID:   b.CategoryID,
		CategoryName: categoryName,
		AuthorNames:  authorNames,
	}, nil
}
