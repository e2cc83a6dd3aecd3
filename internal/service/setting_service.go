package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hapitzutzia/internal/constants"
	"github.com/hapitzutzia/internal/logger"
	"github.com/hapitzutzia/internal/models"
	"github.com/hapitzutzia/internal/repository"
)

// SettingService 设置业务服务
type SettingService struct {
	repo repository.SettingRepository
}

// NewSettingService 创建设置服务
func NewSettingService(repo repository.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// PublicConfig 门户可见的工作室配置
type PublicConfig struct {
	WorkshopName string   `json:"workshop_name"`
	PaymentLink  string   `json:"payment_link"`
	AdminPhone   string   `json:"admin_phone"`
	BoardTypes   []string `json:"board_types"`
	Statuses     []string `json:"statuses"`
	Languages    []string `json:"languages"`
}

// DefaultSettings 启动时写入的默认设置
func DefaultSettings() map[string]string {
	return map[string]string{
		constants.SettingKeyWorkshopName: models.DefaultWorkshopName,
		constants.SettingKeyPaymentLink:  "",
		constants.SettingKeyAdminPhone:   "",
	}
}

// GetAll 获取全部设置（未写入的已知键以空字符串补齐）
func (s *SettingService) GetAll(_ context.Context) (map[string]string, error) {
	rows, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSettingFetchFailed, err)
	}
	result := make(map[string]string, len(constants.SettingKeys))
	for _, key := range constants.SettingKeys {
		result[key] = ""
	}
	for _, row := range rows {
		result[row.Key] = row.Value
	}
	return result, nil
}

// Get 获取单个设置，未设置时返回空字符串
func (s *SettingService) Get(_ context.Context, key string) (string, error) {
	setting, err := s.repo.GetByKey(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSettingFetchFailed, err)
	}
	if setting == nil {
		return "", nil
	}
	return setting.Value, nil
}

// UpdateMany 批量更新设置，任一键非法则整体拒绝
func (s *SettingService) UpdateMany(ctx context.Context, values map[string]string) (map[string]string, error) {
	allowed := buildStringSet(constants.SettingKeys)
	normalized := make(map[string]string, len(values))
	for rawKey, rawValue := range values {
		key := strings.ToLower(strings.TrimSpace(rawKey))
		if _, ok := allowed[key]; !ok {
			return nil, ErrSettingKeyInvalid
		}
		value, err := normalizeSettingValueByKey(key, rawValue)
		if err != nil {
			return nil, err
		}
		normalized[key] = value
	}
	if err := s.repo.UpsertMany(normalized); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSettingSaveFailed, err)
	}
	logger.Infow("settings_updated", "count", len(normalized))
	return s.GetAll(ctx)
}

// GetPublicConfig 组装门户配置
func (s *SettingService) GetPublicConfig(ctx context.Context) (*PublicConfig, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	workshopName := all[constants.SettingKeyWorkshopName]
	if workshopName == "" {
		workshopName = models.DefaultWorkshopName
	}
	return &PublicConfig{
		WorkshopName: workshopName,
		PaymentLink:  all[constants.SettingKeyPaymentLink],
		AdminPhone:   all[constants.SettingKeyAdminPhone],
		BoardTypes:   constants.BoardTypes,
		Statuses:     constants.RepairStatuses,
		Languages:    constants.SupportedLocales,
	}, nil
}

// WorkshopName 获取工作室名称，读取失败时回退默认值
func (s *SettingService) WorkshopName(ctx context.Context) string {
	name, err := s.Get(ctx, constants.SettingKeyWorkshopName)
	if err != nil {
		logger.Warnw("workshop_name_fetch_failed", "error", err)
		return models.DefaultWorkshopName
	}
	if strings.TrimSpace(name) == "" {
		return models.DefaultWorkshopName
	}
	return name
}
