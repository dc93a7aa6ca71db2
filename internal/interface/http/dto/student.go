package dto

// SaveStudentRequest HTTP保存学生请求
type SaveStudentRequest struct {
	Name      string `json:"name" binding:"required,max=100" example:"张三"`
	StudentNo string `json:"student_no" binding:"required,max=50" example:"2023001"`
	Email     string `json:"email" binding:"omitempty,email,max=200" example:"zhangsan@example.com"`
}

// StudentResponse HTTP学生响应
type StudentResponse struct {
	ID        uint   `json:"id" example:"1"`
	Name      string `json:"name" example:"张三"`
	StudentNo string `json:"student_no" example:"2023001"`
	Email     string `json:"email,omitempty" example:"zhangsan@example.com"`
}
