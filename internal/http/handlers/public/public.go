package public

import (
	"time"

	"github.com/hapitzutzia/internal/cache"
	handlershared "github.com/hapitzutzia/internal/http/handlers/shared"
	"github.com/hapitzutzia/internal/http/response"
	"github.com/hapitzutzia/internal/service"

	"github.com/gin-gonic/gin"
)

const publicConfigCacheTTL = 60 * time.Second

// GetConfig 获取门户配置
func (h *Handler) GetConfig(c *gin.Context) {
	var cached service.PublicConfig
	if hit, err := cache.GetJSON(c.Request.Context(), handlershared.PublicConfigCacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	cfg, err := h.SettingService.GetPublicConfig(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "error.setting_fetch_failed")
		return
	}
	_ = cache.SetJSON(c.Request.Context(), handlershared.PublicConfigCacheKey, cfg, publicConfigCacheTTL)
	response.Success(c, cfg)
}

// LookupCustomer 按手机号查找客户（用于表单预填姓名）
func (h *Handler) LookupCustomer(c *gin.Context) {
	customer, err := h.CustomerService.FindByPhone(c.Request.Context(), c.Query("phone"))
	if err != nil {
		respondServiceError(c, err, "error.customer_fetch_failed")
		return
	}
	response.Success(c, gin.H{
		"name":  customer.Name,
		"phone": customer.Phone,
	})
}
