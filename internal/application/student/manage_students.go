package student

import (
	"context"

	"github.com/xiebiao/library/internal/domain/student"
)

// ManageStudentsUseCase 学生管理用例(增删改查)
type ManageStudentsUseCase struct {
	studentRepo student.Repository
}

// NewManageStudentsUseCase 创建学生管理用例
func NewManageStudentsUseCase(studentRepo student.Repository) *ManageStudentsUseCase {
	return &ManageStudentsUseCase{studentRepo: studentRepo}
}

// SaveStudentRequest 保存学生请求DTO
type SaveStudentRequest struct {
	ID        uint   // 0=新建,非0=编辑
	Name      string // 姓名
	StudentNo string // 学号(全局唯一)
	Email     string
}

// List 查询全部学生
func (uc *ManageStudentsUseCase) List(ctx context.Context) ([]*student.Student, error) {
	return uc.studentRepo.FindAll(ctx)
}

// Get 查询单个学生
func (uc *ManageStudentsUseCase) Get(ctx context.Context, id uint) (*student.Student, error) {
	return uc.studentRepo.FindByID(ctx, id)
}

// Save 保存学生(新建/编辑共用)
// 学号重复由数据库唯一索引兜底,仓储层转换为ErrStudentNoDuplicate
func (uc *ManageStudentsUseCase) Save(ctx context.Context, req SaveStudentRequest) (*student.Student, error) {
	var s *student.Student
	if req.ID == 0 {
		s = student.NewStudent(req.Name, req.StudentNo, req.Email)
	} else {
		existing, err := uc.studentRepo.FindByID(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		existing.Name = req.Name
		existing.StudentNo = req.StudentNo
		existing.Email = req.Email
		s = existing
	}

	if err := uc.studentRepo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Delete 删除学生(幂等)
// 历史借阅记录保留StudentID外键,不级联删除
func (uc *ManageStudentsUseCase) Delete(ctx context.Context, id uint) error {
	return uc.studentRepo.Delete(ctx, id)
}
