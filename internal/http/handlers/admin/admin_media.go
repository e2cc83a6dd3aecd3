package admin

import (
	"github.com/hapitzutzia/internal/constants"
	handlershared "github.com/hapitzutzia/internal/http/handlers/shared"
	"github.com/hapitzutzia/internal/http/response"
	"github.com/hapitzutzia/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterMediaPointersRequest 登记已上传对象请求
type RegisterMediaPointersRequest struct {
	Items []service.MediaPointerInput `json:"items" binding:"required"`
}

// UploadAdminRepairMedia 管理端上传维修媒体
func (h *Handler) UploadAdminRepairMedia(c *gin.Context) {
	files, err := handlershared.ReadMediaFiles(c)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.upload_form_invalid", err)
		return
	}
	media, err := h.MediaService.Upload(c.Request.Context(), c.Param("id"), files, constants.AuthorAdmin)
	if err != nil {
		respondServiceError(c, err, "error.media_save_failed")
		return
	}
	response.Success(c, media)
}

// RegisterAdminRepairMediaPointers 登记客户端直传的对象
func (h *Handler) RegisterAdminRepairMediaPointers(c *gin.Context) {
	var req RegisterMediaPointersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	media, err := h.MediaService.RegisterPointers(c.Request.Context(), c.Param("id"), req.Items, constants.AuthorAdmin)
	if err != nil {
		respondServiceError(c, err, "error.media_save_failed")
		return
	}
	response.Success(c, media)
}

// DeleteAdminRepairMedia 删除单个媒体
func (h *Handler) DeleteAdminRepairMedia(c *gin.Context) {
	if err := h.MediaService.Remove(c.Request.Context(), c.Param("id"), c.Param("media_id")); err != nil {
		respondServiceError(c, err, "error.media_save_failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
