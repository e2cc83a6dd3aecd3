package admin

import (
	"strconv"
	"strings"

	handlershared "github.com/hapitzutzia/internal/http/handlers/shared"
	"github.com/hapitzutzia/internal/http/response"
	"github.com/hapitzutzia/internal/models"
	"github.com/hapitzutzia/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RepairListItem 管理端列表项（附带未读留言数）
type RepairListItem struct {
	models.Repair
	UnreadMessages int64 `json:"unread_messages"`
}

// CreateRepairRequest 管理端代客建单请求
type CreateRepairRequest struct {
	Name             string `json:"name" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	BoardType        string `json:"board_type" binding:"required"`
	Description      string `json:"description" binding:"required"`
	Urgency          string `json:"urgency"`
	DeliveryLocation string `json:"delivery_location"`
	DeliveryOther    string `json:"delivery_other"`
}

// UpdateRepairStatusRequest 状态变更请求
type UpdateRepairStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// UpdateRepairPriceRequest 报价请求，price 为 null 表示清空
type UpdateRepairPriceRequest struct {
	Price *models.Money `json:"price"`
}

// parseRepairListQuery 解析列表筛选参数
func parseRepairListQuery(c *gin.Context) (service.RepairListInput, bool) {
	input := service.RepairListInput{
		Status:    c.Query("status"),
		BoardType: c.Query("board_type"),
		Phone:     c.Query("phone"),
		Search:    c.Query("search"),
	}
	var err error
	if input.CreatedFrom, err = handlershared.ParseOptionalDate(c.Query("created_from"), false); err != nil {
		respondError(c, response.CodeBadRequest, "error.date_invalid", nil)
		return input, false
	}
	if input.CreatedTo, err = handlershared.ParseOptionalDate(c.Query("created_to"), true); err != nil {
		respondError(c, response.CodeBadRequest, "error.date_invalid", nil)
		return input, false
	}
	if input.PriceMin, err = handlershared.ParseOptionalDecimal(c.Query("price_min")); err != nil {
		respondError(c, response.CodeBadRequest, "error.price_invalid", nil)
		return input, false
	}
	if input.PriceMax, err = handlershared.ParseOptionalDecimal(c.Query("price_max")); err != nil {
		respondError(c, response.CodeBadRequest, "error.price_invalid", nil)
		return input, false
	}
	return input, true
}

// GetAdminRepairs 获取维修单列表
func (h *Handler) GetAdminRepairs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	input, ok := parseRepairListQuery(c)
	if !ok {
		return
	}
	input.Page = page
	input.PageSize = pageSize

	repairs, total, err := h.RepairService.List(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "error.repair_fetch_failed")
		return
	}

	ids := make([]string, 0, len(repairs))
	for _, repair := range repairs {
		ids = append(ids, repair.ID)
	}
	unread, err := h.MessageService.UnreadCounts(c.Request.Context(), ids)
	if err != nil {
		respondServiceError(c, err, "error.message_fetch_failed")
		return
	}

	items := make([]RepairListItem, 0, len(repairs))
	for _, repair := range repairs {
		items = append(items, RepairListItem{Repair: repair, UnreadMessages: unread[repair.ID]})
	}
	response.SuccessWithPage(c, items, handlershared.BuildPagination(page, pageSize, total))
}

// ExportAdminRepairs 导出筛选后的维修单为 xlsx
func (h *Handler) ExportAdminRepairs(c *gin.Context) {
	input, ok := parseRepairListQuery(c)
	if !ok {
		return
	}
	file, filename, err := h.ExportService.ExportRepairs(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "error.export_failed")
		return
	}
	defer file.Close()

	response.Attachment(c, filename, xlsxContentType)
	if err := file.Write(c.Writer); err != nil {
		requestLog(c).Errorw("admin_repair_export_write_failed", "error", err)
	}
}

// CreateAdminRepair 管理端代客建单
func (h *Handler) CreateAdminRepair(c *gin.Context) {
	var req CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	repair, err := h.RepairService.Create(c.Request.Context(), service.CreateRepairInput{
		Name:             req.Name,
		Phone:            req.Phone,
		BoardType:        req.BoardType,
		Description:      req.Description,
		Urgency:          req.Urgency,
		DeliveryLocation: req.DeliveryLocation,
		DeliveryOther:    req.DeliveryOther,
	})
	if err != nil {
		respondServiceError(c, err, "error.repair_create_failed")
		return
	}
	response.Success(c, repair)
}

// GetAdminRepair 获取维修单详情
func (h *Handler) GetAdminRepair(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	repair, err := h.RepairService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "error.repair_fetch_failed")
		return
	}
	response.Success(c, repair)
}

// DeleteAdminRepair 删除维修单
func (h *Handler) DeleteAdminRepair(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := h.RepairService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "error.repair_delete_failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// UpdateAdminRepairStatus 变更维修状态
func (h *Handler) UpdateAdminRepairStatus(c *gin.Context) {
	var req UpdateRepairStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	repair, err := h.RepairService.Transition(c.Request.Context(), c.Param("id"), req.Status, req.Note)
	if err != nil {
		respondServiceError(c, err, "error.repair_update_failed")
		return
	}
	response.Success(c, repair)
}

// UpdateAdminRepairPrice 设置或清空报价
func (h *Handler) UpdateAdminRepairPrice(c *gin.Context) {
	var req UpdateRepairPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.price_invalid", err)
		return
	}
	repair, err := h.RepairService.SetPrice(c.Request.Context(), c.Param("id"), req.Price)
	if err != nil {
		respondServiceError(c, err, "error.repair_update_failed")
		return
	}
	response.Success(c, repair)
}

// GetAdminRepairStatusLogs 获取状态历史
func (h *Handler) GetAdminRepairStatusLogs(c *gin.Context) {
	logs, err := h.RepairService.StatusLogs(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "error.repair_fetch_failed")
		return
	}
	response.Success(c, logs)
}

// GetAdminRepairWhatsApp 生成 WhatsApp 通知链接
func (h *Handler) GetAdminRepairWhatsApp(c *gin.Context) {
	link, err := h.NotificationService.WhatsAppLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "error.repair_fetch_failed")
		return
	}
	response.Success(c, link)
}
