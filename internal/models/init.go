package models

import (
	"errors"
	"time"

	"github.com/hapitzutzia/internal/logger"

	"gorm.io/gorm"
)

// DefaultWorkshopName 默认工作室名称
const DefaultWorkshopName = "Hapitzutzia"

// InitDefaultSettings 初始化缺失的默认设置项
func InitDefaultSettings(defaults map[string]string) error {
	now := time.Now()
	for key, value := range defaults {
		var existing Setting
		err := DB.Where("key = ?", key).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := DB.Create(&Setting{Key: key, Value: value, UpdatedAt: now}).Error; err != nil {
			return err
		}
		logger.Infow("default_setting_created", "key", key)
	}
	return nil
}
