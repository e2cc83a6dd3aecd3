package admin

import (
	"github.com/hapitzutzia/internal/http/response"

	"github.com/gin-gonic/gin"
)

// SearchCustomers 按姓名或手机号搜索客户
func (h *Handler) SearchCustomers(c *gin.Context) {
	customers, err := h.CustomerService.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondServiceError(c, err, "error.customer_fetch_failed")
		return
	}
	response.Success(c, customers)
}
