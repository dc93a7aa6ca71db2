package category

import (
	"context"

	"github.com/xiebiao/library/internal/domain/category"
)

// ManageCategoriesUseCase 分类管理用例(增删改查)
type ManageCategoriesUseCase struct {
	categoryRepo category.Repository
}

// NewManageCategoriesUseCase 创建分类管理用例
func NewManageCategoriesUseCase(categoryRepo category.Repository) *ManageCategoriesUseCase {
	return &ManageCategoriesUseCase{categoryRepo: categoryRepo}
}

// SaveCategoryRequest 保存分类请求DTO
type SaveCategoryRequest struct {
	ID   uint   // 0=新建,非0=编辑
	Name string // 分类名(全局唯一)
}

// List 查询全部分类
func (uc *ManageCategoriesUseCase) List(ctx context.Context) ([]*category.Category, error) {
	return uc.categoryRepo.FindAll(ctx)
}

// Get 查询单个分类
func (uc *ManageCategoriesUseCase) Get(ctx context.Context, id uint) (*category.Category, error) {
	return uc.categoryRepo.FindByID(ctx, id)
}

// Save 保存分类(新建/编辑共用)
// 分类名重复由数据库唯一索引兜底,仓储层转换为ErrNameDuplicate
func (uc *ManageCategoriesUseCase) Save(ctx context.Context, req SaveCategoryRequest) (*category.Category, error) {
	var c *category.Category
	if req.ID == 0 {
		c = category.NewCategory(req.Name)
	} else {
		existing, err := uc.categoryRepo.FindByID(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		existing.Name = req.Name
		c = existing
	}

	if err := uc.categoryRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete 删除分类(幂等)
func (uc *ManageCategoriesUseCase) Delete(ctx context.Context, id uint) error {
	return uc.categoryRepo.Delete(ctx, id)
}
