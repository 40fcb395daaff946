package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maheswarim312/gradeservices-educonnect/internal/dto"
	"github.com/maheswarim312/gradeservices-educonnect/internal/service"
	"github.com/maheswarim312/gradeservices-educonnect/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
	debug     bool
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService, debug bool) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, debug: debug}
}

// ExportGrades 导出成绩单为 Excel
// GET /api/grades/export?studentID&courseID&teacherID&grade
func (h *ExportHandler) ExportGrades(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	var q dto.GradeListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "过滤参数无效：studentID/courseID/teacherID 必须为正整数")
		return
	}

	buf, filename, err := h.exportSvc.ExportGrades(c.Request.Context(), caller, &q)
	if err != nil {
		if errors.Is(err, service.ErrExportNoGrades) {
			response.NotFound(c, "当前过滤条件下没有可导出的成绩")
			return
		}
		detail := ""
		if h.debug {
			detail = err.Error()
		}
		response.InternalError(c, "导出成绩失败", detail)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

