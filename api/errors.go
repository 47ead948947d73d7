package api

import (
	"errors"

	"gastos/service"

	"github.com/gin-gonic/gin"
)

// RenderServiceError 把领域错误翻译为结构化响应
// 所有领域错误都是局部可恢复的；只有存储不可用会让整个服务降级为 503。
func RenderServiceError(c *gin.Context, err error) {
	var inUse *service.InUseError
	switch {
	case errors.As(err, &inUse):
		BadRequest(c, KindInUse, inUse.Error())
	case errors.Is(err, service.ErrDuplicateName):
		BadRequest(c, KindDuplicate, err.Error())
	case errors.Is(err, service.ErrEmptyName), errors.Is(err, service.ErrInvalidDate):
		BadRequest(c, KindValidation, err.Error())
	case errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrPaymentTypeNotFound),
		errors.Is(err, service.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, service.ErrStoreUnavailable):
		ServiceUnavailable(c, service.ErrStoreUnavailable.Error())
	default:
		InternalError(c, SafeErrorMessage(err, "操作失败"))
	}
}
