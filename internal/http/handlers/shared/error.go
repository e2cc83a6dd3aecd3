package shared

import (
	"github.com/hapitzutzia/internal/http/response"
	"github.com/hapitzutzia/internal/i18n"
	"github.com/hapitzutzia/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	value, ok := c.Get("request_id")
	if !ok {
		return logger.S()
	}
	if id, ok := value.(string); ok && id != "" {
		return logger.SW("request_id", id)
	}
	return logger.S()
}

// RespondError 按请求语言翻译 key 后返回错误。
// 原始错误只进日志：4xx 记 warn，其余记 error。
func RespondError(c *gin.Context, code int, key string, err error) {
	msg := i18n.T(i18n.ResolveLocale(c), key)
	if err != nil {
		appErr := response.WrapError(code, msg, err)
		log := RequestLog(c)
		fields := []interface{}{"code", appErr.Code, "key", key, "error", appErr.Err}
		if c.Request != nil {
			fields = append(fields, "method", c.Request.Method, "path", c.FullPath())
		}
		if code >= 400 && code < 500 {
			log.Warnw("handler_rejected", fields...)
		} else {
			log.Errorw("handler_error", fields...)
		}
	}
	response.Error(c, code, msg)
}
