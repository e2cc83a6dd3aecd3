package admin

import "github.com/hapitzutzia/internal/provider"

// Handler 管理端接口处理器
// 除登录与验证码外，所有路由都挂在 AdminAuthMiddleware 之后。
type Handler struct {
	*provider.Container
}

// New 创建管理端处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
