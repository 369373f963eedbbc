package api

import (
	"errors"
	"net/http"

	"github.com/contractops/contract-gin/internal/workflow"
	"github.com/gin-gonic/gin"
)

// FaultStatus 业务错误分类到 HTTP 状态码的映射
// StorageError 映射为 503:提交未持久化,调用方可重试;其余均为终态失败
func FaultStatus(err error) int {
	switch {
	case errors.Is(err, workflow.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, workflow.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, workflow.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, workflow.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, workflow.ErrStorage):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// faultMessage 各分类的对外消息,错误详情放在 detail 里
func faultMessage(err error) string {
	switch {
	case errors.Is(err, workflow.ErrNotFound):
		return "not found"
	case errors.Is(err, workflow.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, workflow.ErrInvalidTransition):
		return "invalid transition"
	case errors.Is(err, workflow.ErrValidation):
		return "validation failed"
	case errors.Is(err, workflow.ErrStorage):
		return "storage failure, please retry"
	default:
		return "internal server error"
	}
}

// RespondFault 把业务错误翻译成统一错误响应
func RespondFault(c *gin.Context, err error) {
	Error(c, FaultStatus(err), faultMessage(err), err.Error())
}

// ErrorHandlerMiddleware 错误处理中间件,兜底 c.Error 上报的错误
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			var fault *workflow.Fault
			if errors.As(err, &fault) {
				RespondFault(c, err)
			} else {
				Error(c, http.StatusInternalServerError, "internal server error", err.Error())
			}
		}
	}
}
