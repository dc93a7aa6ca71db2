package book

import (
	"context"
	"io"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/category"
	"github.com/xiebiao/library/pkg/metrics"
)

// CoverStorage 封面存储抽象
// 由storage.Uploader实现,接口定义在用例侧便于Mock测试
type CoverStorage interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// SaveBookUseCase 保存图书用例(新建/编辑共用)
type SaveBookUseCase struct {
	bookRepo     book.Repository
	authorRepo   author.Repository
	categoryRepo category.Repository
	covers       CoverStorage
}

// NewSaveBookUseCase 创建保存图书用例
func NewSaveBookUseCase(
	bookRepo book.Repository,
	authorRepo author.Repository,
	categoryRepo category.Repository,
	covers CoverStorage,
) *SaveBookUseCase {
	return &SaveBookUseCase{
		bookRepo:     bookRepo,
		authorRepo:   authorRepo,
		categoryRepo: categoryRepo,
		covers:       covers,
	}
}

// CoverFile 封面文件(可选)
type CoverFile struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// SaveBookRequest 保存图书请求DTO
type SaveBookRequest struct {
	ID         uint   // 0=新建,非0=编辑
	Title      string // 书名
	Stock      int    // 库存
	CategoryID uint   // 分类ID
	AuthorIDs  []uint // 作者ID集合
	Cover      *CoverFile
}

// SaveBookResponse 保存图书响应DTO
type SaveBookResponse struct {
	BookID   uint   `json:"book_id"`
	Title    string `json:"title"`
	CoverURL string `json:"cover_url,omitempty"`
}

// Execute 执行保存图书用例
// 业务规则:
//  1. 库存不能为负数
//  2. 作者1个起:传入的作者ID解析后(部分匹配,无效ID丢弃)为空则拒绝保存
//  3. 分类必须存在
//  4. 携带封面时先上传,上传失败则中止整个保存(不落库)
func (uc *SaveBookUseCase) Execute(ctx context.Context, req SaveBookRequest) (*SaveBookResponse, error) {
	if req.Stock < 0 {
		return nil, book.ErrInvalidStock
	}

	// 解析作者(部分匹配:只保留真实存在的作者)
	authors, err := uc.authorRepo.FindByIDs(ctx, req.AuthorIDs)
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, book.ErrNoAuthorsSelected
	}
	authorIDs := make([]uint, len(authors))
	for i, a := range authors {
		authorIDs[i] = a.ID
	}

	// 校验分类存在
	if _, err := uc.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	// 封面先上传:失败直接中止,避免落库后封面缺失
	coverURL := ""
	if req.Cover != nil {
		coverURL, err = uc.covers.Upload(ctx, req.Cover.Filename, req.Cover.ContentType, req.Cover.Body)
		if err != nil {
			metrics.IncCounterVec(metrics.CoverUploadsTotal, map[string]string{"result": "failure"})
			return nil, err
		}
		metrics.IncCounterVec(metrics.CoverUploadsTotal, map[string]string{"result": "success"})
	}

	var b *book.Book
	if req.ID == 0 {
		b = book.NewBook(req.Title, req.Stock, coverURL, req.CategoryID, authorIDs)
	} else {
		b, err = uc.bookRepo.FindByID(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		b.UpdateInfo(req.Title, req.Stock, req.CategoryID, authorIDs)
		if coverURL != "" {
			b.SetCover(coverURL)
		}
	}

	if err := uc.bookRepo.Save(ctx, b); err != nil {
		return nil, err
	}

	return &SaveBookResponse{
		BookID:   b.ID,
		Title:    b.Title,
		CoverURL: b.CoverURL,
	}, nil
}
