package router

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/hapitzutzia/internal/cache"
	"github.com/hapitzutzia/internal/config"
	"github.com/hapitzutzia/internal/constants"
	adminhandlers "github.com/hapitzutzia/internal/http/handlers/admin"
	publichandlers "github.com/hapitzutzia/internal/http/handlers/public"
	"github.com/hapitzutzia/internal/logger"
	"github.com/hapitzutzia/internal/models"
	"github.com/hapitzutzia/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按门户/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	adminLoginRule := newRateLimitRule(redisPrefix, "admin_login", cfg.Security.LoginRateLimit)
	repairSubmitRule := newRateLimitRule(redisPrefix, "repair_submit", cfg.Security.PublicRateLimit)
	publicWriteRule := newRateLimitRule(redisPrefix, "public_write", cfg.Security.PublicRateLimit)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 本地存储时由静态路由提供媒体访问
	if strings.EqualFold(strings.TrimSpace(cfg.Storage.Driver), constants.StorageDriverLocal) || strings.TrimSpace(cfg.Storage.Driver) == "" {
		r.Static(localMediaRoute(cfg.Storage.PublicBaseURL), cfg.Storage.LocalDir)
	}

	apiV1 := r.Group("/api/v1")
	{
		// 客户门户接口
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/customers/lookup", publicHandler.LookupCustomer)
			public.POST("/repairs", RateLimitMiddleware(redisClient, repairSubmitRule, KeyByIPAndJSONField("phone")), publicHandler.CreateRepair)
			public.GET("/repairs", publicHandler.ListRepairsByPhone)
			public.GET("/repairs/:id", publicHandler.GetRepair)
			public.GET("/repairs/:id/status-logs", publicHandler.GetRepairStatusLogs)
			public.GET("/repairs/:id/messages", publicHandler.GetRepairMessages)
			public.POST("/repairs/:id/messages", RateLimitMiddleware(redisClient, publicWriteRule, KeyByIP), publicHandler.PostRepairMessage)
			public.POST("/repairs/:id/media", RateLimitMiddleware(redisClient, publicWriteRule, KeyByIP), publicHandler.UploadRepairMedia)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 登录接口（无需鉴权）
			admin.GET("/captcha", adminHandler.GetCaptcha)
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.AdminLogin)

			// 需要鉴权的接口
			authorized := admin.Group("")
			authorized.Use(AdminAuthMiddleware(c.AuthService))
			{
				authorized.POST("/logout", adminHandler.AdminLogout)

				// 维修单
				authorized.GET("/repairs", adminHandler.GetAdminRepairs)
				authorized.GET("/repairs/export", adminHandler.ExportAdminRepairs)
				authorized.POST("/repairs", adminHandler.CreateAdminRepair)
				authorized.GET("/repairs/:id", adminHandler.GetAdminRepair)
				authorized.DELETE("/repairs/:id", adminHandler.DeleteAdminRepair)
				authorized.PATCH("/repairs/:id/status", adminHandler.UpdateAdminRepairStatus)
				authorized.PATCH("/repairs/:id/price", adminHandler.UpdateAdminRepairPrice)
				authorized.GET("/repairs/:id/status-logs", adminHandler.GetAdminRepairStatusLogs)
				authorized.GET("/repairs/:id/whatsapp", adminHandler.GetAdminRepairWhatsApp)

				// 媒体
				authorized.POST("/repairs/:id/media", adminHandler.UploadAdminRepairMedia)
				authorized.POST("/repairs/:id/media/pointers", adminHandler.RegisterAdminRepairMediaPointers)
				authorized.DELETE("/repairs/:id/media/:media_id", adminHandler.DeleteAdminRepairMedia)

				// 留言
				authorized.GET("/repairs/:id/messages", adminHandler.GetAdminRepairMessages)
				authorized.POST("/repairs/:id/messages", adminHandler.PostAdminRepairMessage)
				authorized.PATCH("/repairs/:id/messages/read", adminHandler.MarkAdminRepairMessagesRead)

				// 统计、设置、客户
				authorized.GET("/analytics", adminHandler.GetAnalytics)
				authorized.GET("/settings", adminHandler.GetSettings)
				authorized.PUT("/settings", adminHandler.UpdateSettings)
				authorized.GET("/customers", adminHandler.SearchCustomers)
			}
		}
	}

	// 健康检查
	r.GET("/health", healthHandler(c))

	return r
}

// healthHandler 探测数据库与 Redis；数据库不可用时返回 503
func healthHandler(container *provider.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		body := gin.H{"status": "ok", "database": "ok", "redis": "disabled"}
		if err := models.Ping(ctx, container.DB); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
			body["database"] = err.Error()
		}
		if cache.Enabled() {
			body["redis"] = "ok"
			if err := cache.Ping(ctx); err != nil {
				body["redis"] = err.Error()
			}
		}
		c.JSON(status, body)
	}
}

// localMediaRoute 本地媒体静态路由前缀，外部地址时回落到 /uploads
func localMediaRoute(publicBaseURL string) string {
	route := strings.TrimRight(strings.TrimSpace(publicBaseURL), "/")
	if route == "" || !strings.HasPrefix(route, "/") {
		return "/uploads"
	}
	return route
}
