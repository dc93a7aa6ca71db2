package dto

// 作者与分类的HTTP DTO
// 两者结构简单,集中放在一个文件里

// SaveAuthorRequest HTTP保存作者请求
type SaveAuthorRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"Alan Donovan"`
}

// AuthorResponse HTTP作者响应
type AuthorResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Alan Donovan"`
}

// SaveCategoryRequest HTTP保存分类请求
type SaveCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"编程语言"`
}

// CategoryResponse HTTP分类响应
type CategoryResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"编程语言"`
}
