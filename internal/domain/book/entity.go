package book

import (
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. 领域实体不依赖GORM tag,infrastructure层有对应的BookModel
// 2. 作者与分类只保存外键ID,不做对象互相引用
//    (需要作者名、分类名时由调用方显式查询,避免过期的反向引用)
// 3. Stock由仓储层的原子UPDATE保证不为负,实体不直接扣减库存
type Book struct {
	ID         uint
	Title      string // 书名
	Stock      int    // 库存数量(可借副本数)
	CoverURL   string // 封面图片URL(S3)
	CategoryID uint   // 分类ID(多对一)
	AuthorIDs  []uint // 作者ID集合(多对多,join表book_authors)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBook 创建新图书(工厂方法)
// 作者集合由应用层先解析校验(至少1个有效作者)后传入
func NewBook(title string, stock int, coverURL string, categoryID uint, authorIDs []uint) *Book {
	now := time.Now()
	return &Book{
		Title:      title,
		Stock:      stock,
		CoverURL:   coverURL,
		CategoryID: categoryID,
		AuthorIDs:  authorIDs,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Available 是否还有可借库存
func (b *Book) Available() bool {
	return b.Stock > 0
}

// SetCover 更新封面URL(领域行为)
func (b *Book) SetCover(url string) {
	b.CoverURL = url
	b.UpdatedAt = time.Now()
}

// UpdateInfo 更新图书基本信息
func (b *Book) UpdateInfo(title string, stock int, categoryID uint, authorIDs []uint) {
	if title != "" {
		b.Title = title
	}
	if stock >= 0 {
		b.Stock = stock
	}
	if categoryID != 0 {
		b.CategoryID = categoryID
	}
	if len(authorIDs) > 0 {
		b.AuthorIDs = authorIDs
	}
	b.UpdatedAt = time.Now()
}
