package student

import (
	"time"
)

// Student 学生实体
// 与借阅记录是一对多关系;学生本身没有业务不变量
type Student struct {
	ID        uint
	Name      string // 姓名
	StudentNo string // 学号(数据库唯一索引)
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewStudent 创建新学生
func NewStudent(name, studentNo, email string) *Student {
	now := time.Now()
	return &Student{
		Name:      name,
		StudentNo: studentNo,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
