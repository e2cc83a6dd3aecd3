package admin

import (
	"github.com/hapitzutzia/internal/cache"
	handlershared "github.com/hapitzutzia/internal/http/handlers/shared"
	"github.com/hapitzutzia/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetSettings 获取全部设置
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.SettingService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "error.setting_fetch_failed")
		return
	}
	response.Success(c, settings)
}

// UpdateSettings 批量更新设置
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	settings, err := h.SettingService.UpdateMany(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "error.setting_save_failed")
		return
	}
	_ = cache.Del(c.Request.Context(), handlershared.PublicConfigCacheKey)
	response.Success(c, settings)
}
