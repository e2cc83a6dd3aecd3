package public

import (
	"github.com/hapitzutzia/internal/constants"
	handlershared "github.com/hapitzutzia/internal/http/handlers/shared"
	"github.com/hapitzutzia/internal/http/response"
	"github.com/hapitzutzia/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateRepairRequest 客户提交维修请求
type CreateRepairRequest struct {
	Name             string `json:"name" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	BoardType        string `json:"board_type" binding:"required"`
	Description      string `json:"description" binding:"required"`
	Urgency          string `json:"urgency"`
	DeliveryLocation string `json:"delivery_location"`
	DeliveryOther    string `json:"delivery_other"`
}

// PostMessageRequest 客户留言请求
type PostMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateRepair 客户提交维修单
func (h *Handler) CreateRepair(c *gin.Context) {
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

// ListRepairsByPhone 按手机号查询维修单
func (h *Handler) ListRepairsByPhone(c *gin.Context) {
	repairs, err := h.RepairService.ListByPhone(c.Request.Context(), c.Query("phone"))
	if err != nil {
		respondServiceError(c, err, "error.repair_fetch_failed")
		return
	}
	response.Success(c, repairs)
}

// GetRepair 获取维修单详情
func (h *Handler) GetRepair(c *gin.Context) {
	repair, err := h.RepairService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "error.repair_fetch_failed")
		return
	}
	response.Success(c, repair)
}

// GetRepairStatusLogs 获取状态历史
func (h *Handler) GetRepairStatusLogs(c *gin.Context) {
	logs, err := h.RepairService.StatusLogs(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "error.repair_fetch_failed")
		return
	}
	response.Success(c, logs)
}

// GetRepairMessages 获取留言
func (h *Handler) GetRepairMessages(c *gin.Context) {
	messages, err := h.MessageService.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "error.message_fetch_failed")
		return
	}
	response.Success(c, messages)
}

// PostRepairMessage 客户留言
func (h *Handler) PostRepairMessage(c *gin.Context) {
	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.message_text_required", err)
		return
	}
	message, err := h.MessageService.Post(c.Request.Context(), c.Param("id"), constants.AuthorCustomer, req.Text)
	if err != nil {
		respondServiceError(c, err, "error.message_save_failed")
		return
	}
	response.Success(c, message)
}

// UploadRepairMedia 客户上传照片或视频
func (h *Handler) UploadRepairMedia(c *gin.Context) {
	files, err := handlershared.ReadMediaFiles(c)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.upload_form_invalid", err)
		return
	}
	media, err := h.MediaService.Upload(c.Request.Context(), c.Param("id"), files, constants.AuthorCustomer)
	if err != nil {
		respondServiceError(c, err, "error.media_save_failed")
		return
	}
	response.Success(c, media)
}
