package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/category"
)

// ListBooksUseCase 图书查询用例
// 说明:图书实体只存外键,展示所需的作者名、分类名在这里显式拼装
type ListBooksUseCase struct {
	bookRepo     book.Repository
	authorRepo   author.Repository
	categoryRepo category.Repository
}

// NewListBooksUseCase 创建图书查询用例
func NewListBooksUseCase(
	bookRepo book.Repository,
	authorRepo author.Repository,
	categoryRepo category.Repository,
) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookRepo:     bookRepo,
		authorRepo:   authorRepo,
		categoryRepo: categoryRepo,
	}
}

// BookItem 图书展示项
type BookItem struct {
	BookID       uint     `json:"book_id"`
	Title        string   `json:"title"`
	Stock        int      `json:"stock"`
	CoverURL     string   `json:"cover_url,omitempty"`
	CategoryID   uint     `json:"category_id"`
	CategoryName string   `json:"category_name"`
	AuthorNames  []string `json:"author_names"`
}

// Execute 查询全部图书
func (uc *ListBooksUseCase) Execute(ctx context.Context) ([]*BookItem, error) {
	books, err := uc.bookRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.assemble(ctx, books)
}

// ExecuteByCategory 查询指定分类下的图书
// 分类不存在时返回ErrCategoryNotFound,与"分类存在但没有书"区分开
func (uc *ListBooksUseCase) ExecuteByCategory(ctx context.Context, categoryID uint) ([]*BookItem, error) {
	if _, err := uc.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	books, err := uc.bookRepo.FindByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return uc.assemble(ctx, books)
}

// assemble 拼装展示字段(分类名做本地缓存,避免逐行重复查询)
func (uc *ListBooksUseCase) assemble(ctx context.Context, books []*book.Book) ([]*BookItem, error) {
	categoryNames := make(map[uint]string)

	items := make([]*BookItem, 0, len(books))
	for _, b := range books {
		name, ok := categoryNames[b.CategoryID]
		if !ok {
			c, err := uc.categoryRepo.FindByID(ctx, b.CategoryID)
			if err == nil {
				name = c.Name
			}
			// 分类已被删除时展示为空,不让整页查询失败
			categoryNames[b.CategoryID] = name
		}

		authors, err := uc.authorRepo.FindByIDs(ctx, b.AuthorIDs)
		if err != nil {
			return nil, err
		}
		authorNames := make([]string, len(authors))
		for i, a := range authors {
			authorNames[i] = a.Name
		}

		items = append(items, &BookItem{
			BookID:       b.ID,
			Title:        b.Title,
			Stock:        b.Stock,
			CoverURL:     b.CoverURL,
			CategoryID:   b.CategoryID,
			CategoryName: name,
			AuthorNames:  authorNames,
		})
	}

	return items, nil
}
