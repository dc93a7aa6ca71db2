package author

import (
	"context"

	"github.com/xiebiao/library/internal/domain/author"
)

// ManageAuthorsUseCase 作者管理用例(增删改查)
// 说明:作者没有复杂业务规则,用例只做实体拼装与仓储调用
type ManageAuthorsUseCase struct {
	authorRepo author.Repository
}

// NewManageAuthorsUseCase 创建作者管理用例
func NewManageAuthorsUseCase(authorRepo author.Repository) *ManageAuthorsUseCase {
	return &ManageAuthorsUseCase{authorRepo: authorRepo}
}

// SaveAuthorRequest 保存作者请求DTO
type SaveAuthorRequest struct {
	ID   uint   // 0=新建,非0=编辑
	Name string // 姓名
}

// List 查询全部作者
func (uc *ManageAuthorsUseCase) List(ctx context.Context) ([]*author.Author, error) {
	return uc.authorRepo.FindAll(ctx)
}

// Get 查询单个作者
func (uc *ManageAuthorsUseCase) Get(ctx context.Context, id uint) (*author.Author, error) {
	return uc.authorRepo.FindByID(ctx, id)
}

// Save 保存作者(新建/编辑共用)
func (uc *ManageAuthorsUseCase) Save(ctx context.Context, req SaveAuthorRequest) (*author.Author, error) {
	var a *author.Author
	if req.ID == 0 {
		a = author.NewAuthor(req.Name)
	} else {
		existing, err := uc.authorRepo.FindByID(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		existing.Name = req.Name
		a = existing
	}

	if err := uc.authorRepo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete 删除作者(幂等)
func (uc *ManageAuthorsUseCase) Delete(ctx context.Context, id uint) error {
	return uc.authorRepo.Delete(ctx, id)
}
