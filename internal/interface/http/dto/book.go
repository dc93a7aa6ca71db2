package dto

// SaveBookRequest HTTP保存图书请求(新建/编辑共用)
// 说明:封面图片通过multipart/form-data的cover字段上传,可选
// validator tag说明:
// - required: 必填字段
// - min/max: 数值范围校验
// - dive: 对切片每个元素校验
type SaveBookRequest struct {
	Title      string `form:"title" binding:"required,max=200" example:"Go程序设计语言"`
	Stock      int    `form:"stock" binding:"min=0" example:"10"`
	CategoryID uint   `form:"category_id" binding:"required" example:"1"`
	AuthorIDs  []uint `form:"author_ids" binding:"required,min=1,dive,required" example:"1,2"`
}

// BookResponse HTTP图书响应
type BookResponse struct {
	ID           uint     `json:"id" example:"1"`
	Title        string   `json:"title" example:"Go程序设计语言"`
	Stock        int      `json:"stock" example:"10"`
	CoverURL     string   `json:"cover_url,omitempty" example:"https://library-book-covers.s3.ap-northeast-1.amazonaws.com/xxx_cover.png"`
	CategoryID   uint     `json:"category_id" example:"1"`
	CategoryName string   `json:"category_name" example:"编程语言"`
	AuthorNames  []string `json:"author_names" example:"Alan Donovan,Brian Kernighan"`
}

// SaveBookResponse HTTP保存图书响应
type SaveBookResponse struct {
	BookID   uint   `json:"book_id" example:"1"`
	Title    string `json:"title" example:"Go程序设计语言"`
	CoverURL string `json:"cover_url,omitempty"`
}

// UpdateCoverResponse HTTP更新封面响应
type UpdateCoverResponse struct {
	BookID   uint   `json:"book_id" example:"1"`
	CoverURL string `json:"cover_url"`
}
