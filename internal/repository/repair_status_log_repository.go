package repository

import (
	"github.com/hapitzutzia/internal/models"

	"gorm.io/gorm"
)

// RepairStatusLogRepository 状态日志数据访问接口
type RepairStatusLogRepository interface {
	Create(log *models.RepairStatusLog) error
	ListByRepair(repairID string) ([]models.RepairStatusLog, error)
	WithTx(tx *gorm.DB) *GormRepairStatusLogRepository
}

// GormRepairStatusLogRepository GORM 实现
type GormRepairStatusLogRepository struct {
	db *gorm.DB
}

// NewRepairStatusLogRepository 创建状态日志仓库
func NewRepairStatusLogRepository(db *gorm.DB) *GormRepairStatusLogRepository {
	return &GormRepairStatusLogRepository{db: db}
}

// WithTx 绑定事务
func (r *GormRepairStatusLogRepository) WithTx(tx *gorm.DB) *GormRepairStatusLogRepository {
	if tx == nil {
		return r
	}
	return &GormRepairStatusLogRepository{db: tx}
}

// Create 追加状态日志
func (r *GormRepairStatusLogRepository) Create(log *models.RepairStatusLog) error {
	return r.db.Create(log).Error
}

// ListByRepair 获取维修单状态历史，按时间正序
func (r *GormRepairStatusLogRepository) ListByRepair(repairID string) ([]models.RepairStatusLog, error) {
	var logs []models.RepairStatusLog
	if err := r.db.Where("repair_id = ?", repairID).Order("changed_at asc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
