package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/student"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// studentRepository 学生仓储实现(MySQL)
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository 创建学生仓储
func NewStudentRepository(db *gorm.DB) student.Repository {
	return &studentRepository{db: db}
}

// FindAll 查询全部学生(按ID升序)
func (r *studentRepository) FindAll(ctx context.Context) ([]*student.Student, error) {
	var models []StudentModel
	db := dbFromContext(ctx, r.db)

	if err := db.Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询学生列表失败")
	}

	students := make([]*student.Student, len(models))
	for i := range models {
		students[i] = toStudentEntity(&models[i])
	}
	return students, nil
}

// FindByID 根据ID查找学生
func (r *studentRepository) FindByID(ctx context.Context, id uint) (*student.Student, error) {
	var model StudentModel
	db := dbFromContext(ctx, r.db)

	err := db.First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, student.ErrStudentNotFound
		}
		return nil, apperrors.Wrap(err, "查询学生失败")
	}

	return toStudentEntity(&model), nil
}

// Save 保存学生(按ID upsert)
// 学号唯一索引冲突转换为业务错误
func (r *studentRepository) Save(ctx context.Context, s *student.Student) error {
	db := dbFromContext(ctx, r.db)

	model := &StudentModel{
		ID:        s.ID,
		Name:      s.Name,
		StudentNo: s.StudentNo,
		Email:     s.Email,
	}

	if err := db.Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return student.ErrStudentNoDuplicate
		}
		return apperrors.Wrap(err, "保存学生失败")
	}

	s.ID = model.ID
	s.CreatedAt = model.CreatedAt
	s.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除学生(软删除,幂等)
func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)

	if err := db.Delete(&StudentModel{}, id).Error; err != nil {
		return apperrors.Wrap(err, "删除学生失败")
	}
	return nil
}

// toStudentEntity GORM模型 → 领域实体
func toStudentEntity(model *StudentModel) *student.Student {
	return &student.Student{
		ID:        model.ID,
		Name:      model.Name,
		StudentNo: model.StudentNo,
		Email:     model.Email,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
