package author

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/author"
)

// fakeAuthorRepo 内存作者仓储
type fakeAuthorRepo struct {
	authors map[uint]*author.Author
	nextID  uint
}

func newFakeAuthorRepo(authors ...*author.Author) *fakeAuthorRepo {
	m := make(map[uint]*author.Author)
	var maxID uint
	for _, a := range authors {
		m[a.ID] = a
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	return &fakeAuthorRepo{authors: m, nextID: maxID + 1}
}

func (r *fakeAuthorRepo) FindAll(ctx context.Context) ([]*author.Author, error) {
	result := make([]*author.Author, 0, len(r.authors))
	for _, a := range r.authors {
		result = append(result, a)
	}
	return result, nil
}

func (r *fakeAuthorRepo) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	a, ok := r.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return a, nil
}

func (r *fakeAuthorRepo) FindByIDs(ctx context.Context, ids []uint) ([]*author.Author, error) {
	result := make([]*author.Author, 0, len(ids))
	for _, id := range ids {
		if a, ok := r.authors[id]; ok {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *fakeAuthorRepo) Save(ctx context.Context, a *author.Author) error {
	if a.ID == 0 {
		a.ID = r.nextID
		r.nextID++
	}
	r.authors[a.ID] = a
	return nil
}

// Delete 模拟gorm语义:ID不存在时Delete不报错
func (r *fakeAuthorRepo) Delete(ctx context.Context, id uint) error {
	delete(r.authors, id)
	return nil
}

func TestManageAuthors(t *testing.T) {
	ctx := context.Background()

	t.Run("新建后可查询", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		uc := NewManageAuthorsUseCase(repo)

		created, err := uc.Save(ctx, SaveAuthorRequest{Name: "鲁迅"})
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		got, err := uc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "鲁迅", got.Name)
	})

	t.Run("编辑不存在的作者返回错误", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		uc := NewManageAuthorsUseCase(repo)

		_, err := uc.Save(ctx, SaveAuthorRequest{ID: 999, Name: "无此人"})
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})

	t.Run("删除后列表不再包含", func(t *testing.T) {
		repo := newFakeAuthorRepo(
			&author.Author{ID: 1, Name: "鲁迅"},
			&author.Author{ID: 2, Name: "老舍"},
		)
		uc := NewManageAuthorsUseCase(repo)

		require.NoError(t, uc.Delete(ctx, 1))

		list, err := uc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, uint(2), list[0].ID)
	})
}

// TestDeleteAuthorIdempotent 删除是幂等操作:同一ID删两次,第二次同样成功
func TestDeleteAuthorIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAuthorRepo(&author.Author{ID: 1, Name: "鲁迅"})
	uc := NewManageAuthorsUseCase(repo)

	require.NoError(t, uc.Delete(ctx, 1))
	_, err := uc.Get(ctx, 1)
	require.ErrorIs(t, err, author.ErrAuthorNotFound)

	// 第二次删除同一ID:不报错,状态不变
	require.NoError(t, uc.Delete(ctx, 1))
	_, err = uc.Get(ctx, 1)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)

	// 从未存在过的ID同理
	assert.NoError(t, uc.Delete(ctx, 999))
}
