package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/order"
	"github.com/xiebiao/library/internal/domain/student"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// =========================================
// 内存Fake实现(只实现用例需要的行为)
// =========================================

type fakeTxManager struct{}

func (fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookRepo struct {
	books map[uint]*book.Book
}

func newFakeBookRepo(books ...*book.Book) *fakeBookRepo {
	m := make(map[uint]*book.Book)
	for _, b := range books {
		m[b.ID] = b
	}
	return &fakeBookRepo{books: m}
}

func (r *fakeBookRepo) FindAll(ctx context.Context) ([]*book.Book, error) {
	result := make([]*book.Book, 0, len(r.books))
	for _, b := range r.books {
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepo) FindByCategoryID(ctx context.Context, categoryID uint) ([]*book.Book, error) {
	var result []*book.Book
	for _, b := range r.books {
		if b.CategoryID == categoryID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *fakeBookRepo) Save(ctx context.Context, b *book.Book) error {
	if b.ID == 0 {
		b.ID = uint(len(r.books) + 1)
	}
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error {
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if b.Stock+delta < 0 {
		return book.ErrOutOfStock
	}
	b.Stock += delta
	return nil
}

func (r *fakeBookRepo) UpdateCover(ctx context.Context, id uint, coverURL string) error {
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	b.CoverURL = coverURL
	return nil
}

type fakeStudentRepo struct {
	students map[uint]*student.Student
}

func newFakeStudentRepo(students ...*student.Student) *fakeStudentRepo {
	m := make(map[uint]*student.Student)
	for _, s := range students {
		m[s.ID] = s
	}
	return &fakeStudentRepo{students: m}
}

func (r *fakeStudentRepo) FindAll(ctx context.Context) ([]*student.Student, error) {
	result := make([]*student.Student, 0, len(r.students))
	for _, s := range r.students {
		result = append(result, s)
	}
	return result, nil
}

func (r *fakeStudentRepo) FindByID(ctx context.Context, id uint) (*student.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, student.ErrStudentNotFound
	}
	return s, nil
}

func (r *fakeStudentRepo) Save(ctx context.Context, s *student.Student) error {
	if s.ID == 0 {
		s.ID = uint(len(r.students) + 1)
	}
	r.students[s.ID] = s
	return nil
}

func (r *fakeStudentRepo) Delete(ctx context.Context, id uint) error {
	delete(r.students, id)
	return nil
}

type fakeOrderRepo struct {
	orders map[uint]*order.Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*order.Order), nextID: 1}
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	o.ID = r.nextID
	r.nextID++
	stored := *o
	r.orders[o.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	// 返回副本,模拟数据库语义(修改实体后必须Update才生效)
	copied := *o
	return &copied, nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, o *order.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return order.ErrOrderNotFound
	}
	stored := *o
	r.orders[o.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) List(ctx context.Context, page, pageSize int) ([]*order.Order, int64, error) {
	result := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		result = append(result, o)
	}
	return result, int64(len(result)), nil
}

func (r *fakeOrderRepo) ListByStudentID(ctx context.Context, studentID uint, page, pageSize int) ([]*order.Order, int64, error) {
	var result []*order.Order
	for _, o := range r.orders {
		if o.StudentID == studentID {
			result = append(result, o)
		}
	}
	return result, int64(len(result)), nil
}

// =========================================
// 借书用例测试
// =========================================

func TestBorrowBook(t *testing.T) {
	ctx := context.Background()

	newFixture := func(stock int) (*BorrowBookUseCase, *fakeBookRepo, *fakeOrderRepo) {
		bookRepo := newFakeBookRepo(&book.Book{ID: 1, Title: "Go程序设计语言", Stock: stock, CategoryID: 1})
		studentRepo := newFakeStudentRepo(&student.Student{ID: 10, Name: "张三", StudentNo: "2023001"})
		orderRepo := newFakeOrderRepo()
		uc := NewBorrowBookUseCase(orderRepo, bookRepo, studentRepo, fakeTxManager{})
		return uc, bookRepo, orderRepo
	}

	t.Run("正常借书:库存减1并生成借阅记录", func(t *testing.T) {
		uc, bookRepo, orderRepo := newFixture(3)

		resp, err := uc.Execute(ctx, BorrowBookRequest{StudentID: 10, BookID: 1})
		require.NoError(t, err)

		assert.NotZero(t, resp.OrderID)
		assert.Equal(t, uint(10), resp.StudentID)
		assert.Equal(t, "Go程序设计语言", resp.BookTitle)
		assert.Equal(t, 2, bookRepo.books[1].Stock, "借书后库存应减1")

		created, err := orderRepo.FindByID(ctx, resp.OrderID)
		require.NoError(t, err)
		assert.False(t, created.Returned(), "新借阅记录应为未归还状态")
	})

	t.Run("库存为0时借书失败", func(t *testing.T) {
		uc, bookRepo, orderRepo := newFixture(0)

		_, err := uc.Execute(ctx, BorrowBookRequest{StudentID: 10, BookID: 1})
		require.Error(t, err)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrCodeOutOfStock, appErr.Code)
		assert.Contains(t, appErr.Message, "Go程序设计语言", "错误信息应携带书名")

		assert.Equal(t, 0, bookRepo.books[1].Stock, "失败时库存不变")
		assert.Empty(t, orderRepo.orders, "失败时不生成借阅记录")
	})

	t.Run("学生不存在时借书失败", func(t *testing.T) {
		uc, bookRepo, _ := newFixture(3)

		_, err := uc.Execute(ctx, BorrowBookRequest{StudentID: 999, BookID: 1})
		assert.ErrorIs(t, err, student.ErrStudentNotFound)
		assert.Equal(t, 3, bookRepo.books[1].Stock, "失败时库存不变")
	})

	t.Run("图书不存在时借书失败", func(t *testing.T) {
		uc, _, _ := newFixture(3)

		_, err := uc.Execute(ctx, BorrowBookRequest{StudentID: 10, BookID: 999})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

// TestBorrowReturnCycle 借还完整周期
// 场景:只有1本库存,借出→再借失败→归还→可再次借出
func TestBorrowReturnCycle(t *testing.T) {
	ctx := context.Background()

	bookRepo := newFakeBookRepo(&book.Book{ID: 1, Title: "唯一副本", Stock: 1, CategoryID: 1})
	studentRepo := newFakeStudentRepo(&student.Student{ID: 10, Name: "张三", StudentNo: "2023001"})
	orderRepo := newFakeOrderRepo()

	borrowUC := NewBorrowBookUseCase(orderRepo, bookRepo, studentRepo, fakeTxManager{})
	returnUC := NewReturnBookUseCase(orderRepo, bookRepo, fakeTxManager{})

	// 1. 借出唯一一本
	resp, err := borrowUC.Execute(ctx, BorrowBookRequest{StudentID: 10, BookID: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, bookRepo.books[1].Stock)

	// 2. 库存已空,再借失败
	_, err = borrowUC.Execute(ctx, BorrowBookRequest{StudentID: 10, BookID: 1})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeOutOfStock, apperrors.GetAppError(err).Code)

	// 3. 归还,库存加回
	retResp, err := returnUC.Execute(ctx, resp.OrderID)
	require.NoError(t, err)
	assert.NotEmpty(t, retResp.ReturnedAt)
	assert.Equal(t, 1, bookRepo.books[1].Stock, "归还后库存应加回1")

	// 4. 可再次借出
	_, err = borrowUC.Execute(ctx, BorrowBookRequest{StudentID: 10, BookID: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, bookRepo.books[1].Stock)
}

// =========================================
// 还书用例测试
// =========================================

func TestReturnBook(t *testing.T) {
	ctx := context.Background()

	newFixture := func() (*ReturnBookUseCase, *fakeBookRepo, *fakeOrderRepo, uint) {
		bookRepo := newFakeBookRepo(&book.Book{ID: 1, Title: "Go程序设计语言", Stock: 2, CategoryID: 1})
		orderRepo := newFakeOrderRepo()
		o := order.NewOrder(10, 1)
		_ = orderRepo.Create(ctx, o)
		uc := NewReturnBookUseCase(orderRepo, bookRepo, fakeTxManager{})
		return uc, bookRepo, orderRepo, o.ID
	}

	t.Run("正常还书:写入归还时间并加回库存", func(t *testing.T) {
		uc, bookRepo, orderRepo, orderID := newFixture()

		resp, err := uc.Execute(ctx, orderID)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ReturnedAt)
		assert.Equal(t, 3, bookRepo.books[1].Stock)

		stored, err := orderRepo.FindByID(ctx, orderID)
		require.NoError(t, err)
		assert.True(t, stored.Returned())
	})

	t.Run("重复还书被拒绝且库存只加一次", func(t *testing.T) {
		uc, bookRepo, _, orderID := newFixture()

		_, err := uc.Execute(ctx, orderID)
		require.NoError(t, err)

		_, err = uc.Execute(ctx, orderID)
		assert.ErrorIs(t, err, order.ErrAlreadyReturned)
		assert.Equal(t, 3, bookRepo.books[1].Stock, "重复还书不应再次加库存")
	})

	t.Run("借阅记录不存在时还书失败", func(t *testing.T) {
		uc, _, _, _ := newFixture()

		_, err := uc.Execute(ctx, 999)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}
