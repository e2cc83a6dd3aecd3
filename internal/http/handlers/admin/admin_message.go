package admin

import (
	"github.com/hapitzutzia/internal/constants"
	"github.com/hapitzutzia/internal/http/response"

	"github.com/gin-gonic/gin"
)

// PostMessageRequest 留言请求
type PostMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// GetAdminRepairMessages 获取维修单留言
func (h *Handler) GetAdminRepairMessages(c *gin.Context) {
	messages, err := h.MessageService.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "error.message_fetch_failed")
		return
	}
	response.Success(c, messages)
}

// PostAdminRepairMessage 管理员回复
func (h *Handler) PostAdminRepairMessage(c *gin.Context) {
	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.message_text_required", err)
		return
	}
	message, err := h.MessageService.Post(c.Request.Context(), c.Param("id"), constants.AuthorAdmin, req.Text)
	if err != nil {
		respondServiceError(c, err, "error.message_save_failed")
		return
	}
	response.Success(c, message)
}

// MarkAdminRepairMessagesRead 将客户留言标记为已读
func (h *Handler) MarkAdminRepairMessagesRead(c *gin.Context) {
	updated, err := h.MessageService.MarkReadByAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "error.message_save_failed")
		return
	}
	response.Success(c, gin.H{"updated": updated})
}
