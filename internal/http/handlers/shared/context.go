package shared

import (
	"github.com/hapitzutzia/internal/constants"
	"github.com/hapitzutzia/internal/http/response"
	"github.com/hapitzutzia/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminClaims 从上下文读取管理端会话声明并统一处理错误响应。
func GetAdminClaims(c *gin.Context) (*service.AdminClaims, bool) {
	value, exists := c.Get(constants.ContextKeyAdminClaims)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return nil, false
	}
	claims, ok := value.(*service.AdminClaims)
	if !ok || claims == nil {
		RespondError(c, response.CodeUnauthorized, "error.token_invalid", nil)
		return nil, false
	}
	return claims, true
}
