package student

import (
	"context"
)

// Repository 学生仓储接口
type Repository interface {
	// FindAll 查询全部学生
	FindAll(ctx context.Context) ([]*Student, error)

	// FindByID 根据ID查找学生
	// 不存在时返回ErrStudentNotFound
	FindByID(ctx context.Context, id uint) (*Student, error)

	// Save 保存学生(按ID upsert)
	// 学号重复时返回ErrStudentNoDuplicate
	Save(ctx context.Context, student *Student) error

	// Delete 删除学生(幂等)
	Delete(ctx context.Context, id uint) error
}
