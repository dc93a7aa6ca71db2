package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/book"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 作者多对多关联在Save时整体替换(Association Replace)
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// FindAll 查询全部图书(按ID升序,预加载作者避免N+1)
func (r *bookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	db := dbFromContext(ctx, r.db)

	if err := db.Preload("Authors").Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	db := dbFromContext(ctx, r.db)

	err := db.Preload("Authors").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByCategoryID 查询指定分类下的全部图书
// 分类不存在或无匹配时返回空切片(不校验分类存在性)
func (r *bookRepository) FindByCategoryID(ctx context.Context, categoryID uint) ([]*book.Book, error) {
	var models []BookModel
	db := dbFromContext(ctx, r.db)

	err := db.Preload("Authors").
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "按分类查询图书失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// Save 保存图书(按ID upsert)
// 设计说明:
// 1. 字段用Save(ID为0插入,否则全字段更新)
// 2. 作者关联整体替换:Association("Authors").Replace
//    (只引用既有作者行,Omit防止GORM顺带upsert作者表)
func (r *bookRepository) Save(ctx context.Context, b *book.Book) error {
	db := dbFromContext(ctx, r.db)

	model := &BookModel{
		ID:         b.ID,
		Title:      b.Title,
		Stock:      b.Stock,
		CoverURL:   b.CoverURL,
		CategoryID: b.CategoryID,
	}

	if err := db.Omit("Authors").Save(model).Error; err != nil {
		return apperrors.Wrap(err, "保存图书失败")
	}

	// 替换作者关联(join表book_authors)
	authors := make([]AuthorModel, 0, len(b.AuthorIDs))
	for _, id := range b.AuthorIDs {
		authors = append(authors, AuthorModel{ID: id})
	}
	if err := db.Model(model).Omit("Authors.*").Association("Authors").Replace(authors); err != nil {
		return apperrors.Wrap(err, "更新图书作者关联失败")
	}

	// 回填自增ID与时间戳
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// Delete 删除图书(软删除,幂等)
// ID不存在时不报错,对齐DELETE BY KEY语义
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)

	if err := db.Delete(&BookModel{}, id).Error; err != nil {
		return apperrors.Wrap(err, "删除图书失败")
	}
	return nil
}

// LockByID 悲观锁查询图书(借书事务中使用)
// SELECT ... FOR UPDATE锁定行,其他事务必须等待COMMIT/ROLLBACK
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	db := dbFromContext(ctx, r.db)

	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}

	return toBookEntity(&model), nil
}

// UpdateStock 更新库存(原子操作)
// UPDATE books SET stock = stock + delta WHERE id = ? AND stock + delta >= 0
func (r *bookRepository) UpdateStock(ctx context.Context, id uint, delta int) error {
	db := dbFromContext(ctx, r.db)

	result := db.Model(&BookModel{}).
		Where("id = ?", id).
		Where("stock + ? >= 0", delta). // 防止库存为负
		Update("stock", gorm.Expr("stock + ?", delta))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新库存失败")
	}

	if result.RowsAffected == 0 {
		// 可能是图书不存在,或者库存不足,再查一次确定原因
		var model BookModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "查询图书失败")
		}
		return book.ErrOutOfStock
	}

	return nil
}

// UpdateCover 更新封面URL
func (r *bookRepository) UpdateCover(ctx context.Context, id uint, coverURL string) error {
	db := dbFromContext(ctx, r.db)

	// 先确认图书存在(更新同值时RowsAffected为0,无法区分不存在)
	var model BookModel
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return book.ErrBookNotFound
		}
		return apperrors.Wrap(err, "查询图书失败")
	}

	if err := db.Model(&model).Update("cover_url", coverURL).Error; err != nil {
		return apperrors.Wrap(err, "更新封面失败")
	}
	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
// 作者关联折叠为ID集合(领域实体不持有对象引用)
func toBookEntity(model *BookModel) *book.Book {
	authorIDs := make([]uint, len(model.Authors))
	for i, a := range model.Authors {
		authorIDs[i] = a.ID
	}

	return &book.Book{
		ID:         model.ID,
		Title:      model.Title,
		Stock:      model.Stock,
		CoverURL:   model.CoverURL,
		CategoryID: model.CategoryID,
		AuthorIDs:  authorIDs,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
