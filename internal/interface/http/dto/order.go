package dto

// BorrowBookRequest HTTP借书请求
// 学生端接口不携带student_id,从登录学生身份推导;管理端接口显式指定
type BorrowBookRequest struct {
	StudentID uint `json:"student_id" binding:"required" example:"1"`
	BookID    uint `json:"book_id" binding:"required" example:"1"`
}

// BorrowBookResponse HTTP借书响应
type BorrowBookResponse struct {
	OrderID    uint   `json:"order_id" example:"1"`
	StudentID  uint   `json:"student_id" example:"1"`
	BookID     uint   `json:"book_id" example:"1"`
	BookTitle  string `json:"book_title" example:"Go程序设计语言"`
	BorrowedAt string `json:"borrowed_at" example:"2024-11-06 10:30:00"`
}

// ReturnBookResponse HTTP还书响应
type ReturnBookResponse struct {
	OrderID    uint   `json:"order_id" example:"1"`
	BookID     uint   `json:"book_id" example:"1"`
	ReturnedAt string `json:"returned_at" example:"2024-11-20 15:00:00"`
}

// ListOrdersRequest HTTP借阅记录列表请求
type ListOrdersRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
}

// OrderItemResponse HTTP借阅记录列表项
type OrderItemResponse struct {
	OrderID     uint   `json:"order_id" example:"1"`
	StudentID   uint   `json:"student_id" example:"1"`
	StudentName string `json:"student_name" example:"张三"`
	BookID      uint   `json:"book_id" example:"1"`
	BookTitle   string `json:"book_title" example:"Go程序设计语言"`
	BorrowedAt  string `json:"borrowed_at" example:"2024-11-06 10:30:00"`
	ReturnedAt  string `json:"returned_at,omitempty" example:"2024-11-20 15:00:00"`
}
