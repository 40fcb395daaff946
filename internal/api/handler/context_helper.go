package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maheswarim312/gradeservices-educonnect/internal/authz"
	"github.com/maheswarim312/gradeservices-educonnect/pkg/response"
)

// MustGetCaller 从 Gin 上下文中安全提取调用方身份。
// 如果认证中间件未正确注入 caller，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetCaller(c *gin.Context) (authz.Caller, bool) {
	v, exists := c.Get("caller")
	if !exists {
		response.Unauthorized(c, "未认证")
		return authz.Caller{}, false
	}
	caller, ok := v.(authz.Caller)
	if !ok || caller.ID <= 0 {
		response.Unauthorized(c, "未认证")
		return authz.Caller{}, false
	}
	return caller, true
}

// parsePositiveID 解析路径参数为正整数 id，失败时写入 400 响应
func parsePositiveID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		response.BadRequest(c, name+" 必须为正整数")
		return 0, false
	}
	return id, true
}
