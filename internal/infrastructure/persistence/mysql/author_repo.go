package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/author"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// authorRepository 作者仓储实现(MySQL)
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// FindAll 查询全部作者(按ID升序)
func (r *authorRepository) FindAll(ctx context.Context) ([]*author.Author, error) {
	var models []AuthorModel
	db := dbFromContext(ctx, r.db)

	if err := db.Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

// FindByID 根据ID查找作者
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	db := dbFromContext(ctx, r.db)

	err := db.First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	return toAuthorEntity(&model), nil
}

// FindByIDs 批量查找作者(部分匹配语义)
// WHERE id IN (?)天然丢弃无法解析的ID,只返回存在的作者
func (r *authorRepository) FindByIDs(ctx context.Context, ids []uint) ([]*author.Author, error) {
	if len(ids) == 0 {
		return []*author.Author{}, nil
	}

	var models []AuthorModel
	db := dbFromContext(ctx, r.db)

	if err := db.Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "批量查询作者失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

// Save 保存作者(按ID upsert)
func (r *authorRepository) Save(ctx context.Context, a *author.Author) error {
	db := dbFromContext(ctx, r.db)

	model := &AuthorModel{
		ID:   a.ID,
		Name: a.Name,
	}

	if err := db.Save(model).Error; err != nil {
		return apperrors.Wrap(err, "保存作者失败")
	}

	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除作者(软删除,幂等)
func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)

	if err := db.Delete(&AuthorModel{}, id).Error; err != nil {
		return apperrors.Wrap(err, "删除作者失败")
	}
	return nil
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(model *AuthorModel) *author.Author {
	return &author.Author{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
