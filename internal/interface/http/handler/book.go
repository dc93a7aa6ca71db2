package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	saveBookUseCase    *appbook.SaveBookUseCase
	listBooksUseCase   *appbook.ListBooksUseCase
	getBookUseCase     *appbook.GetBookUseCase
	deleteBookUseCase  *appbook.DeleteBookUseCase
	updateCoverUseCase *appbook.UpdateCoverUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	saveBookUseCase *appbook.SaveBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
	updateCoverUseCase *appbook.UpdateCoverUseCase,
) *BookHandler {
	return &BookHandler{
		saveBookUseCase:    saveBookUseCase,
		listBooksUseCase:   listBooksUseCase,
		getBookUseCase:     getBookUseCase,
		deleteBookUseCase:  deleteBookUseCase,
		updateCoverUseCase: updateCoverUseCase,
	}
}

// ListBooks 查询全部图书
// @Summary      图书列表
// @Description  查询全部图书,携带作者名与分类名(登录即可访问)
// @Tags         图书模块
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	items, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toBookResponses(items))
}

// ListBooksByCategory 按分类查询图书
// @Summary      分类下的图书列表
// @Tags         图书模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /categories/{id}/books [get]
func (h *BookHandler) ListBooksByCategory(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	items, err := h.listBooksUseCase.ExecuteByCategory(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toBookResponses(items))
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toBookResponse(item))
}

// CreateBook 新建图书
// @Summary      新建图书
// @Description  multipart表单提交,封面图片(cover字段)可选;上传失败则整个保存中止
// @Tags         图书模块
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "书名"
// @Param        stock formData int true "库存"
// @Param        category_id formData int true "分类ID"
// @Param        author_ids formData []int true "作者ID集合"
// @Param        cover formData file false "封面图片"
// @Success      200 {object} response.Response{data=dto.SaveBookResponse}
// @Failure      400 {object} response.Response "参数错误/未选择有效作者"
// @Router       /admin/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	h.saveBook(c, 0)
}

// UpdateBook 编辑图书
// @Summary      编辑图书
// @Tags         图书模块
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.SaveBookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /admin/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	h.saveBook(c, id)
}

// saveBook 新建/编辑共用逻辑
func (h *BookHandler) saveBook(c *gin.Context, id uint) {
	var req dto.SaveBookRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	appReq := appbook.SaveBookRequest{
		ID:         id,
		Title:      req.Title,
		Stock:      req.Stock,
		CategoryID: req.CategoryID,
		AuthorIDs:  req.AuthorIDs,
	}

	// 封面文件可选
	if file, err := c.FormFile("cover"); err == nil {
		f, err := file.Open()
		if err != nil {
			response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "读取封面文件失败")
			return
		}
		defer f.Close()
		appReq.Cover = &appbook.CoverFile{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Body:        f,
		}
	}

	result, err := h.saveBookUseCase.Execute(c.Request.Context(), appReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.SaveBookResponse{
		BookID:   result.BookID,
		Title:    result.Title,
		CoverURL: result.CoverURL,
	})
}

// UpdateCover 更新封面
// @Summary      更新图书封面
// @Description  上传新封面到对象存储并写回封面URL,上传失败时旧封面保持不变
// @Tags         图书模块
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        cover formData file true "封面图片"
// @Success      200 {object} response.Response{data=dto.UpdateCoverResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /admin/books/{id}/cover [put]
func (h *BookHandler) UpdateCover(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("cover")
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "缺少封面文件")
		return
	}
	f, err := file.Open()
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "读取封面文件失败")
		return
	}
	defer f.Close()

	result, err := h.updateCoverUseCase.Execute(c.Request.Context(), id, appbook.CoverFile{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Body:        f,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.UpdateCoverResponse{
		BookID:   result.BookID,
		CoverURL: result.CoverURL,
	})
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  幂等删除,不存在的ID也返回成功
// @Tags         图书模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Router       /admin/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// =========================================
// 辅助函数
// =========================================

// parseIDParam 解析路径ID参数,失败时直接写响应
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的ID参数")
		return 0, false
	}
	return uint(id), true
}

func toBookResponse(item *appbook.BookItem) *dto.BookResponse {
	return &dto.BookResponse{
		ID:           item.BookID,
		Title:        item.Title,
		Stock:        item.Stock,
		CoverURL:     item.CoverURL,
		CategoryID:   item.CategoryID,
		CategoryName: item.CategoryName,
		AuthorNames:  item.AuthorNames,
	}
}

func toBookResponses(items []*appbook.BookItem) []*dto.BookResponse {
	result := make([]*dto.BookResponse, len(items))
	for i, item := range items {
		result[i] = toBookResponse(item)
	}
	return result
}
