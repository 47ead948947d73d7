package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 错误响应结构
// Kind 是稳定的错误类别标识，客户端据此区分失败原因；Message 面向人类。
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"error"`
	Message string `json:"message"`
}

// 稳定的错误类别标识
const (
	KindValidation  = "validation_error"
	KindDuplicate   = "duplicate_name"
	KindNotFound    = "not_found"
	KindInUse       = "referential_integrity_violation"
	KindUnavailable = "store_unavailable"
	KindInternal    = "internal_error"
)

// Success 成功响应，直接输出数据本身
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Fail 错误响应
func Fail(c *gin.Context, code int, kind, message string) {
	c.JSON(code, ErrorResponse{
		Code:    code,
		Kind:    kind,
		Message: message,
	})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, kind, message string) {
	Fail(c, http.StatusBadRequest, kind, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, KindNotFound, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, KindInternal, message)
}

// ServiceUnavailable 503 错误响应，数据库整体不可用时使用
func ServiceUnavailable(c *gin.Context, message string) {
	Fail(c, http.StatusServiceUnavailable, KindUnavailable, message)
}
