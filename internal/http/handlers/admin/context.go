package admin

import (
	handlershared "github.com/hapitzutzia/internal/http/handlers/shared"
	"github.com/hapitzutzia/internal/service"

	"github.com/gin-gonic/gin"
)

func getAdminClaims(c *gin.Context) (*service.AdminClaims, bool) {
	return handlershared.GetAdminClaims(c)
}
