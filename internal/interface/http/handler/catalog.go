package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/library/internal/application/author"
	appcategory "github.com/xiebiao/library/internal/application/category"
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/category"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// CatalogHandler 作者与分类HTTP处理器
// 两个实体都是简单CRUD,共用一个处理器
type CatalogHandler struct {
	authorUseCase   *appauthor.ManageAuthorsUseCase
	categoryUseCase *appcategory.ManageCategoriesUseCase
}

// NewCatalogHandler 创建作者与分类处理器
func NewCatalogHandler(
	authorUseCase *appauthor.ManageAuthorsUseCase,
	categoryUseCase *appcategory.ManageCategoriesUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		authorUseCase:   authorUseCase,
		categoryUseCase: categoryUseCase,
	}
}

// =========================================
// 作者
// =========================================

// ListAuthors 作者列表
// @Summary      作者列表
// @Tags         作者模块
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]dto.AuthorResponse}
// @Router       /authors [get]
func (h *CatalogHandler) ListAuthors(c *gin.Context) {
	authors, err := h.authorUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	result := make([]*dto.AuthorResponse, len(authors))
	for i, a := range authors {
		result[i] = toAuthorResponse(a)
	}
	response.Success(c, result)
}

// GetAuthor 作者详情
// @Summary      作者详情
// @Tags         作者模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /authors/{id} [get]
func (h *CatalogHandler) GetAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	a, err := h.authorUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toAuthorResponse(a))
}

// CreateAuthor 新建作者
// @Summary      新建作者
// @Tags         作者模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.SaveAuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Router       /admin/authors [post]
func (h *CatalogHandler) CreateAuthor(c *gin.Context) {
	h.saveAuthor(c, 0)
}

// UpdateAuthor 编辑作者
// @Summary      编辑作者
// @Tags         作者模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Param        request body dto.SaveAuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /admin/authors/{id} [put]
func (h *CatalogHandler) UpdateAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	h.saveAuthor(c, id)
}

func (h *CatalogHandler) saveAuthor(c *gin.Context, id uint) {
	var req dto.SaveAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	a, err := h.authorUseCase.Save(c.Request.Context(), appauthor.SaveAuthorRequest{
		ID:   id,
		Name: req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toAuthorResponse(a))
}

// DeleteAuthor 删除作者
// @Summary      删除作者
// @Description  幂等删除,不存在的ID也返回成功
// @Tags         作者模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response
// @Router       /admin/authors/{id} [delete]
func (h *CatalogHandler) DeleteAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.authorUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// =========================================
// 分类
// =========================================

// ListCategories 分类列表
// @Summary      分类列表
// @Tags         分类模块
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]dto.CategoryResponse}
// @Router       /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	result := make([]*dto.CategoryResponse, len(categories))
	for i, cat := range categories {
		result[i] = toCategoryResponse(cat)
	}
	response.Success(c, result)
}

// GetCategory 分类详情
// @Summary      分类详情
// @Tags         分类模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cat, err := h.categoryUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toCategoryResponse(cat))
}

// CreateCategory 新建分类
// @Summary      新建分类
// @Tags         分类模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.SaveCategoryRequest true "分类信息"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      400 {object} response.Response "分类名已存在"
// @Router       /admin/categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	h.saveCategory(c, 0)
}

// UpdateCategory 编辑分类
// @Summary      编辑分类
// @Tags         分类模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Param        request body dto.SaveCategoryRequest true "分类信息"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /admin/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	h.saveCategory(c, id)
}

func (h *CatalogHandler) saveCategory(c *gin.Context, id uint) {
	var req dto.SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	cat, err := h.categoryUseCase.Save(c.Request.Context(), appcategory.SaveCategoryRequest{
		ID:   id,
		Name: req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toCategoryResponse(cat))
}

// DeleteCategory 删除分类
// @Summary      删除分类
// @Description  幂等删除,不存在的ID也返回成功
// @Tags         分类模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response
// @Router       /admin/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.categoryUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func toAuthorResponse(a *author.Author) *dto.AuthorResponse {
	return &dto.AuthorResponse{ID: a.ID, Name: a.Name}
}

func toCategoryResponse(c *category.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}
}
