package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/library/internal/application/order"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// OrderHandler 借阅HTTP处理器
type OrderHandler struct {
	borrowBookUseCase *apporder.BorrowBookUseCase
	returnBookUseCase *apporder.ReturnBookUseCase
	listOrdersUseCase *apporder.ListOrdersUseCase
}

// NewOrderHandler 创建借阅处理器
func NewOrderHandler(
	borrowBookUseCase *apporder.BorrowBookUseCase,
	returnBookUseCase *apporder.ReturnBookUseCase,
	listOrdersUseCase *apporder.ListOrdersUseCase,
) *OrderHandler {
	return &OrderHandler{
		borrowBookUseCase: borrowBookUseCase,
		returnBookUseCase: returnBookUseCase,
		listOrdersUseCase: listOrdersUseCase,
	}
}

// BorrowBook 借书
// @Summary      借书
// @Description  为指定学生借出一本图书,使用悲观锁防止最后一本被并发借出
// @Tags         借阅模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.BorrowBookRequest true "借书信息"
// @Success      200 {object} response.Response{data=dto.BorrowBookResponse} "借书成功"
// @Failure      400 {object} response.Response "图书已无库存"
// @Failure      404 {object} response.Response "学生或图书不存在"
// @Router       /student/orders [post]
//
// 教学说明:防止库存超扣的核心逻辑
// 1. 开启数据库事务
// 2. SELECT FOR UPDATE锁定图书行
// 3. 检查库存是否大于0
// 4. 扣减库存并创建借阅记录
// 5. 提交事务释放锁
// 并发借最后一本书时,只有第一个拿到行锁的事务成功,其余返回库存不足
func (h *OrderHandler) BorrowBook(c *gin.Context) {
	var req dto.BorrowBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.borrowBookUseCase.Execute(c.Request.Context(), apporder.BorrowBookRequest{
		StudentID: req.StudentID,
		BookID:    req.BookID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.BorrowBookResponse{
		OrderID:    result.OrderID,
		StudentID:  result.StudentID,
		BookID:     result.BookID,
		BookTitle:  result.BookTitle,
		BorrowedAt: result.BorrowedAt,
	})
}

// ReturnBook 还书
// @Summary      还书
// @Description  归还借阅记录对应的图书,重复归还会被拒绝
// @Tags         借阅模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "借阅记录ID"
// @Success      200 {object} response.Response{data=dto.ReturnBookResponse} "还书成功"
// @Failure      400 {object} response.Response "该记录已归还"
// @Failure      404 {object} response.Response "借阅记录不存在"
// @Router       /student/orders/{id}/return [post]
func (h *OrderHandler) ReturnBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.returnBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.ReturnBookResponse{
		OrderID:    result.OrderID,
		BookID:     result.BookID,
		ReturnedAt: result.ReturnedAt,
	})
}

// ListOrders 借阅记录列表(管理员)
// @Summary      借阅记录列表
// @Description  分页查询全部借阅记录,携带学生姓名与书名
// @Tags         借阅模块
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页条数" default(20)
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /admin/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, pageSize := parsePageQuery(c)

	items, total, err := h.listOrdersUseCase.Execute(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, toOrderResponses(items), total, page, pageSize)
}

// ListOrdersByStudent 某学生的借阅记录
// @Summary      学生借阅记录列表
// @Tags         借阅模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "学生ID"
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页条数" default(20)
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /admin/students/{id}/orders [get]
func (h *OrderHandler) ListOrdersByStudent(c *gin.Context) {
	studentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePageQuery(c)

	items, total, err := h.listOrdersUseCase.ExecuteByStudent(c.Request.Context(), studentID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, toOrderResponses(items), total, page, pageSize)
}

// parsePageQuery 解析分页参数,越界时回退默认值
func parsePageQuery(c *gin.Context) (page, pageSize int) {
	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return 1, 20
	}
	page, pageSize = req.Page, req.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func toOrderResponses(items []*apporder.OrderItem) []*dto.OrderItemResponse {
	result := make([]*dto.OrderItemResponse, len(items))
	for i, item := range items {
		result[i] = &dto.OrderItemResponse{
			OrderID:     item.OrderID,
			StudentID:   item.StudentID,
			StudentName: item.StudentName,
			BookID:      item.BookID,
			BookTitle:   item.BookTitle,
			BorrowedAt:  item.BorrowedAt,
			ReturnedAt:  item.ReturnedAt,
		}
	}
	return result
}
