package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/category"
)

func TestListBooks(t *testing.T) {
	ctx := context.Background()

	authorRepo := newFakeAuthorRepo(
		&author.Author{ID: 1, Name: "Alan Donovan"},
		&author.Author{ID: 2, Name: "Brian Kernighan"},
	)
	categoryRepo := newFakeCategoryRepo(
		&category.Category{ID: 1, Name: "编程语言"},
		&category.Category{ID: 2, Name: "数据库"},
	)
	bookRepo := newFakeBookRepo(
		&book.Book{ID: 1, Title: "Go程序设计语言", Stock: 3, CategoryID: 1, AuthorIDs: []uint{1, 2}},
		&book.Book{ID: 2, Title: "高性能MySQL", Stock: 1, CategoryID: 2, AuthorIDs: []uint{2}},
	)
	uc := NewListBooksUseCase(bookRepo, authorRepo, categoryRepo)

	t.Run("查询全部图书并拼装作者名分类名", func(t *testing.T) {
		items, err := uc.Execute(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)

		byID := make(map[uint]*BookItem)
		for _, item := range items {
			byID[item.BookID] = item
		}
		assert.Equal(t, "编程语言", byID[1].CategoryName)
		assert.ElementsMatch(t, []string{"Alan Donovan", "Brian Kernighan"}, byID[1].AuthorNames)
		assert.Equal(t, []string{"Brian Kernighan"}, byID[2].AuthorNames)
	})

	t.Run("按分类查询", func(t *testing.T) {
		items, err := uc.ExecuteByCategory(ctx, 2)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "高性能MySQL", items[0].Title)
	})

	t.Run("分类存在但没有书时返回空列表", func(t *testing.T) {
		emptyUC := NewListBooksUseCase(newFakeBookRepo(), authorRepo, categoryRepo)
		items, err := emptyUC.ExecuteByCategory(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("分类不存在时报错", func(t *testing.T) {
		_, err := uc.ExecuteByCategory(ctx, 999)
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})
}
