package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/hapitzutzia/internal/app"
	"github.com/hapitzutzia/internal/config"
	"github.com/hapitzutzia/internal/logger"
	"github.com/hapitzutzia/internal/models"
	"github.com/hapitzutzia/internal/service"

	"github.com/gin-gonic/gin"
)

var weakSecretMarkers = []string{"change-me", "change-in-production", "your-secret-key", "hapitzutzia"}

func main() {
	var (
		mode        string
		migrateOnly bool
	)
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.BoolVar(&migrateOnly, "migrate-only", false, "仅执行数据库迁移与默认设置后退出")
	flag.Parse()

	mode, err := app.ParseMode(mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("\033[36m\033[1m~~ Hapitzutzia repair tracker ~~\033[0m \033[2m(mode=%s)\033[0m\n", mode)

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	log := logger.S()
	defer func() { _ = logger.Z().Sync() }()

	if err := checkSecurity(cfg); err != nil {
		log.Fatalw("startup_security_check_failed", "error", err)
	}
	if err := prepareDatabase(cfg); err != nil {
		log.Fatalw("startup_database_failed", "error", err)
	}
	if migrateOnly {
		log.Infow("startup_migrate_only_done")
		return
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  log,
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		log.Fatalw("app_run_failed", "error", err)
	}
}

// checkSecurity release 模式下弱密钥直接拒绝启动，其余模式仅告警
func checkSecurity(cfg *config.Config) error {
	if isWeakSecret(cfg.JWT.SecretKey) {
		if cfg.Server.Mode == "release" {
			return errors.New("jwt.secret_key is weak or still the default value")
		}
		logger.Warnw("startup_weak_jwt_secret")
	}
	if strings.TrimSpace(cfg.Admin.Password) == "" && strings.TrimSpace(cfg.Admin.PasswordHash) == "" {
		logger.Warnw("startup_admin_password_missing", "hint", "set admin.password or admin.password_hash")
	}
	return nil
}

func prepareDatabase(cfg *config.Config) error {
	pool := cfg.Database.Pool
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           pool.MaxOpenConns,
		MaxIdleConns:           pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		return fmt.Errorf("init db: %w", err)
	}
	if err := models.AutoMigrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	// 默认设置写入失败不阻塞启动，后台可再次保存
	if err := models.InitDefaultSettings(service.DefaultSettings()); err != nil {
		logger.Warnw("startup_default_settings_failed", "error", err)
	}
	return nil
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	for _, marker := range weakSecretMarkers {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	return false
}
