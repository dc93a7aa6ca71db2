package student

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/student"
)

// fakeStudentRepo 内存学生仓储,模拟学号唯一索引
type fakeStudentRepo struct {
	students map[uint]*student.Student
	nextID   uint
}

func newFakeStudentRepo(students ...*student.Student) *fakeStudentRepo {
	m := make(map[uint]*student.Student)
	var maxID uint
	for _, s := range students {
		m[s.ID] = s
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	return &fakeStudentRepo{students: m, nextID: maxID + 1}
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
	for _, existing := range r.students {
		if existing.StudentNo == s.StudentNo && existing.ID != s.ID {
			return student.ErrStudentNoDuplicate
		}
	}
	if s.ID == 0 {
		s.ID = r.nextID
		r.nextID++
	}
	r.students[s.ID] = s
	return nil
}

// Delete 模拟gorm语义:ID不存在时Delete不报错
func (r *fakeStudentRepo) Delete(ctx context.Context, id uint) error {
	delete(r.students, id)
	return nil
}

func TestManageStudents(t *testing.T) {
	ctx := context.Background()

	t.Run("新建后可查询", func(t *testing.T) {
		repo := newFakeStudentRepo()
		uc := NewManageStudentsUseCase(repo)

		created, err := uc.Save(ctx, SaveStudentRequest{
			Name:      "张三",
			StudentNo: "2023001",
			Email:     "zhangsan@example.com",
		})
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		got, err := uc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "2023001", got.StudentNo)
	})

	t.Run("学号重复被拒绝", func(t *testing.T) {
		repo := newFakeStudentRepo(
			&student.Student{ID: 1, Name: "张三", StudentNo: "2023001"},
		)
		uc := NewManageStudentsUseCase(repo)

		_, err := uc.Save(ctx, SaveStudentRequest{Name: "李四", StudentNo: "2023001"})
		assert.ErrorIs(t, err, student.ErrStudentNoDuplicate)
	})

	t.Run("编辑保留原ID", func(t *testing.T) {
		repo := newFakeStudentRepo(
			&student.Student{ID: 1, Name: "张三", StudentNo: "2023001"},
		)
		uc := NewManageStudentsUseCase(repo)

		updated, err := uc.Save(ctx, SaveStudentRequest{
			ID:        1,
			Name:      "张三丰",
			StudentNo: "2023001",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), updated.ID)
		assert.Equal(t, "张三丰", updated.Name)
	})
}

// TestDeleteStudentIdempotent 删除是幂等操作:同一ID删两次,第二次同样成功
func TestDeleteStudentIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStudentRepo(&student.Student{ID: 1, Name: "张三", StudentNo: "2023001"})
	uc := NewManageStudentsUseCase(repo)

	require.NoError(t, uc.Delete(ctx, 1))
	_, err := uc.Get(ctx, 1)
	require.ErrorIs(t, err, student.ErrStudentNotFound)

	require.NoError(t, uc.Delete(ctx, 1))
	assert.NoError(t, uc.Delete(ctx, 999))
}
