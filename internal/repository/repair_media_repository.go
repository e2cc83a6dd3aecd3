package repository

import (
	"errors"

	"github.com/hapitzutzia/internal/models"

	"gorm.io/gorm"
)

// RepairMediaRepository 媒体附件数据访问接口
type RepairMediaRepository interface {
	CreateBatch(items []models.RepairMedia) error
	GetByIDAndRepair(id, repairID string) (*models.RepairMedia, error)
	ListByRepair(repairID string) ([]models.RepairMedia, error)
	ListStoragePaths(repairID string) ([]string, error)
	Delete(id string) error
}

// GormRepairMediaRepository GORM 实现
type GormRepairMediaRepository struct {
	db *gorm.DB
}

// NewRepairMediaRepository 创建媒体附件仓库
func NewRepairMediaRepository(db *gorm.DB) *GormRepairMediaRepository {
	return &GormRepairMediaRepository{db: db}
}

// CreateBatch 批量登记媒体指针
func (r *GormRepairMediaRepository) CreateBatch(items []models.RepairMedia) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

// GetByIDAndRepair 获取属于指定维修单的媒体
func (r *GormRepairMediaRepository) GetByIDAndRepair(id, repairID string) (*models.RepairMedia, error) {
	var media models.RepairMedia
	if err := r.db.Where("id = ? AND repair_id = ?", id, repairID).First(&media).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &media, nil
}

// ListByRepair 获取维修单媒体列表
func (r *GormRepairMediaRepository) ListByRepair(repairID string) ([]models.RepairMedia, error) {
	var items []models.RepairMedia
	if err := r.db.Where("repair_id = ?", repairID).Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListStoragePaths 获取维修单全部媒体存储路径
func (r *GormRepairMediaRepository) ListStoragePaths(repairID string) ([]string, error) {
	var paths []string
	if err := r.db.Model(&models.RepairMedia{}).Where("repair_id = ?", repairID).Pluck("storage_path", &paths).Error; err != nil {
		return nil, err
	}
	return paths, nil
}

// Delete 删除媒体记录
func (r *GormRepairMediaRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.RepairMedia{}).Error
}
