package handler

import (
	"github.com/gin-gonic/gin"

	appstudent "github.com/xiebiao/library/internal/application/student"
	"github.com/xiebiao/library/internal/domain/student"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// StudentHandler 学生HTTP处理器
type StudentHandler struct {
	studentUseCase *appstudent.ManageStudentsUseCase
}

// NewStudentHandler 创建学生处理器
func NewStudentHandler(studentUseCase *appstudent.ManageStudentsUseCase) *StudentHandler {
	return &StudentHandler{studentUseCase: studentUseCase}
}

// ListStudents 学生列表
// @Summary      学生列表
// @Tags         学生模块
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]dto.StudentResponse}
// @Router       /admin/students [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.studentUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	result := make([]*dto.StudentResponse, len(students))
	for i, s := range students {
		result[i] = toStudentResponse(s)
	}
	response.Success(c, result)
}

// GetStudent 学生详情
// @Summary      学生详情
// @Tags         学生模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "学生ID"
// @Success      200 {object} response.Response{data=dto.StudentResponse}
// @Failure      404 {object} response.Response "学生不存在"
// @Router       /admin/students/{id} [get]
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	s, err := h.studentUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toStudentResponse(s))
}

// CreateStudent 新建学生
// @Summary      新建学生
// @Tags         学生模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.SaveStudentRequest true "学生信息"
// @Success      200 {object} response.Response{data=dto.StudentResponse}
// @Failure      400 {object} response.Response "学号已存在"
// @Router       /admin/students [post]
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	h.saveStudent(c, 0)
}

// UpdateStudent 编辑学生
// @Summary      编辑学生
// @Tags         学生模块
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "学生ID"
// @Param        request body dto.SaveStudentRequest true "学生信息"
// @Success      200 {object} response.Response{data=dto.StudentResponse}
// @Failure      404 {object} response.Response "学生不存在"
// @Router       /admin/students/{id} [put]
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	h.saveStudent(c, id)
}

func (h *StudentHandler) saveStudent(c *gin.Context, id uint) {
	var req dto.SaveStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	s, err := h.studentUseCase.Save(c.Request.Context(), appstudent.SaveStudentRequest{
		ID:        id,
		Name:      req.Name,
		StudentNo: req.StudentNo,
		Email:     req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toStudentResponse(s))
}

// DeleteStudent 删除学生
// @Summary      删除学生
// @Description  幂等删除,历史借阅记录保留
// @Tags         学生模块
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "学生ID"
// @Success      200 {object} response.Response
// @Router       /admin/students/{id} [delete]
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.studentUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func toStudentResponse(s *student.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:        s.ID,
		Name:      s.Name,
		StudentNo: s.StudentNo,
		Email:     s.Email,
	}
}
