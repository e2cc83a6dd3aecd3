package admin

import (
	"strconv"

	"github.com/hapitzutzia/internal/http/response"
	"github.com/hapitzutzia/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAnalytics 获取维修统计
func (h *Handler) GetAnalytics(c *gin.Context) {
	forceRefresh, _ := strconv.ParseBool(c.DefaultQuery("force_refresh", "false"))
	result, err := h.AnalyticsService.GetAnalytics(c.Request.Context(), service.AnalyticsQueryInput{
		Period:       c.DefaultQuery("period", "month"),
		ForceRefresh: forceRefresh,
	})
	if err != nil {
		respondServiceError(c, err, "error.analytics_failed")
		return
	}
	response.Success(c, result)
}
