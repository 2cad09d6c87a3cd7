package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应信封（与前端 API 契约一致）
type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Count     *int        `json:"count,omitempty"`
	Error     string      `json:"error,omitempty"`
	ErrorKind string      `json:"error_kind,omitempty"`
	Resource  string      `json:"resource,omitempty"`
	Message   string      `json:"message,omitempty"`
}

// ── 结构化错误类别 ──
// 客户端按 error_kind 分支，不再对 error 文案做子串匹配

const (
	KindNotFound      = "not_found"
	KindConflict      = "conflict"
	KindInvalidStatus = "invalid_status"
	KindBadRequest    = "bad_request"
	KindInternal      = "internal"
)

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// OKCount 200 列表成功响应，附带条数
func OKCount(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Count:   &count,
	})
}

// OKMessage 200 成功响应，附带提示消息（更新/删除）
func OKMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
	})
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// ── 错误响应 ──

// Fail 通用错误响应
func Fail(c *gin.Context, httpStatus int, kind, resource, errMsg string) {
	c.JSON(httpStatus, Response{
		Success:   false,
		Error:     errMsg,
		ErrorKind: kind,
		Resource:  resource,
	})
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, resource, errMsg string) {
	Fail(c, http.StatusNotFound, KindNotFound, resource, errMsg)
}

// Conflict 409 业务键冲突
func Conflict(c *gin.Context, resource, errMsg string) {
	Fail(c, http.StatusConflict, KindConflict, resource, errMsg)
}

// BadRequest 400 请求参数错误
func BadRequest(c *gin.Context, kind, errMsg string) {
	Fail(c, http.StatusBadRequest, kind, "", errMsg)
}

// InternalError 500 未预期错误，error 为固定文案，message 附带底层错误信息便于诊断
func InternalError(c *gin.Context, errMsg string, err error) {
	resp := Response{
		Success:   false,
		Error:     errMsg,
		ErrorKind: KindInternal,
	}
	if err != nil {
		resp.Message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// [自证通过] pkg/response/response.go
