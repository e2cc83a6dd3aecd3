package provider

import (
	"time"

	"github.com/hapitzutzia/internal/cache"
	"github.com/hapitzutzia/internal/config"
	"github.com/hapitzutzia/internal/logger"
	"github.com/hapitzutzia/internal/models"
	"github.com/hapitzutzia/internal/queue"
	"github.com/hapitzutzia/internal/repository"
	"github.com/hapitzutzia/internal/service"
	"github.com/hapitzutzia/internal/storage"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	DB          *gorm.DB
	QueueClient *queue.Client
	BlobStore   storage.BlobStore

	// Repositories
	CustomerRepo        repository.CustomerRepository
	RepairRepo          repository.RepairRepository
	RepairStatusLogRepo repository.RepairStatusLogRepository
	RepairMediaRepo     repository.RepairMediaRepository
	RepairMessageRepo   repository.RepairMessageRepository
	SettingRepo         repository.SettingRepository

	// Services
	AuthService         *service.AuthService
	CaptchaService      *service.CaptchaService
	RepairService       *service.RepairService
	CustomerService     *service.CustomerService
	MessageService      *service.MessageService
	MediaService        *service.MediaService
	SettingService      *service.SettingService
	AnalyticsService    *service.AnalyticsService
	NotificationService *service.NotificationService
	ExportService       *service.ExportService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithDB(cfg, models.DB)
}

// NewContainerWithDB 使用指定数据库初始化容器
func NewContainerWithDB(cfg *config.Config, db *gorm.DB) (*Container, error) {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	blobStore, err := storage.New(cfg.Storage)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config:      cfg,
		DB:          db,
		QueueClient: queueClient,
		BlobStore:   blobStore,
	}

	// 1. 初始化 Repositories
	c.initRepositories(db)

	// 2. 初始化 Services
	if err := c.initServices(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.RepairRepo = repository.NewRepairRepository(db)
	c.RepairStatusLogRepo = repository.NewRepairStatusLogRepository(db)
	c.RepairMediaRepo = repository.NewRepairMediaRepository(db)
	c.RepairMessageRepo = repository.NewRepairMessageRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
}

func (c *Container) initServices() error {
	authService, err := service.NewAuthService(c.Config.JWT, c.Config.Admin)
	if err != nil {
		logger.Errorw("provider_init_auth_failed", "error", err)
		return err
	}
	c.AuthService = authService
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)

	c.SettingService = service.NewSettingService(c.SettingRepo)
	c.RepairService = service.NewRepairService(
		c.RepairRepo,
		c.CustomerRepo,
		c.RepairStatusLogRepo,
		c.RepairMediaRepo,
		c.BlobStore,
		c.QueueClient,
	)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo)
	c.MessageService = service.NewMessageService(c.RepairMessageRepo, c.RepairRepo)
	c.MediaService = service.NewMediaService(c.Config.Upload, c.RepairMediaRepo, c.RepairRepo, c.BlobStore, c.QueueClient)
	c.AnalyticsService = service.NewAnalyticsService(c.RepairRepo, time.Duration(c.Config.Analytics.CacheTTLSeconds)*time.Second)
	c.NotificationService = service.NewNotificationService(c.RepairRepo, c.SettingService, c.Config.Notification, c.Config.Server.BaseURL)
	c.ExportService = service.NewExportService(c.RepairService)
	return nil
}

// Close 释放外部连接
func (c *Container) Close() {
	if c == nil {
		return
	}
	if err := c.QueueClient.Close(); err != nil {
		logger.Warnw("provider_close_queue_client_failed", "error", err)
	}
	if err := cache.Close(); err != nil {
		logger.Warnw("provider_close_redis_failed", "error", err)
	}
}
