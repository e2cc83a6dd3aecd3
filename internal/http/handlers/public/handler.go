package public

import "github.com/hapitzutzia/internal/provider"

// Handler 客户门户接口处理器入口
// 说明：客户身份以手机号自证，不走会话。
type Handler struct {
	*provider.Container
}

// New 创建门户处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
