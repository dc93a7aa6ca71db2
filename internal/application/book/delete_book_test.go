package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/book"
)

// TestDeleteBookIdempotent 删除是幂等操作:同一ID删两次,第二次同样成功
func TestDeleteBookIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookRepo(&book.Book{ID: 1, Title: "活着", Stock: 3, CategoryID: 1})
	uc := NewDeleteBookUseCase(repo)

	require.NoError(t, uc.Execute(ctx, 1))
	_, err := repo.FindByID(ctx, 1)
	require.ErrorIs(t, err, book.ErrBookNotFound)

	// 第二次删除同一ID:不报错
	require.NoError(t, uc.Execute(ctx, 1))

	// 从未存在过的ID同理
	assert.NoError(t, uc.Execute(ctx, 999))
}
