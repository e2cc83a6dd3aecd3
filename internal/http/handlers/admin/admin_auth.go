package admin

import (
	"time"

	handlershared "github.com/hapitzutzia/internal/http/handlers/shared"
	"github.com/hapitzutzia/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Password       string                              `json:"password" binding:"required"`
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// GetCaptcha 获取登录图片验证码
func (h *Handler) GetCaptcha(c *gin.Context) {
	if !h.CaptchaService.Enabled() {
		response.Success(c, gin.H{"enabled": false})
		return
	}
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		respondServiceError(c, err, "error.internal")
		return
	}
	response.Success(c, gin.H{
		"enabled":      true,
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}

// AdminLogin 管理员登录
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CaptchaService.Verify(req.CaptchaPayload.ToServicePayload()); err != nil {
		respondServiceError(c, err, "error.login_failed")
		return
	}

	session, err := h.AuthService.Login(req.Password)
	if err != nil {
		requestLog(c).Warnw("admin_login_rejected", "client_ip", c.ClientIP())
		respondServiceError(c, err, "error.login_failed")
		return
	}
	response.Success(c, LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	})
}

// AdminLogout 注销当前会话
func (h *Handler) AdminLogout(c *gin.Context) {
	claims, ok := getAdminClaims(c)
	if !ok {
		return
	}
	if err := h.AuthService.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, nil)
}
