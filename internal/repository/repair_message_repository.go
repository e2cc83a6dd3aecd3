package repository

import (
	"github.com/hapitzutzia/internal/constants"
	"github.com/hapitzutzia/internal/models"

	"gorm.io/gorm"
)

// RepairMessageRepository 留言数据访问接口
type RepairMessageRepository interface {
	Create(message *models.RepairMessage) error
	ListByRepair(repairID string) ([]models.RepairMessage, error)
	MarkCustomerMessagesRead(repairID string) (int64, error)
	CountUnreadByRepairs(repairIDs []string) ([]UnreadCount, error)
}

// GormRepairMessageRepository GORM 实现
type GormRepairMessageRepository struct {
	db *gorm.DB
}

// NewRepairMessageRepository 创建留言仓库
func NewRepairMessageRepository(db *gorm.DB) *GormRepairMessageRepository {
	return &GormRepairMessageRepository{db: db}
}

// Create 创建留言
func (r *GormRepairMessageRepository) Create(message *models.RepairMessage) error {
	return r.db.Create(message).Error
}

// ListByRepair 获取维修单留言，按时间正序
func (r *GormRepairMessageRepository) ListByRepair(repairID string) ([]models.RepairMessage, error) {
	var messages []models.RepairMessage
	if err := r.db.Where("repair_id = ?", repairID).Order("created_at asc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkCustomerMessagesRead 将客户未读留言标记为管理员已读
func (r *GormRepairMessageRepository) MarkCustomerMessagesRead(repairID string) (int64, error) {
	result := r.db.Model(&models.RepairMessage{}).
		Where("repair_id = ? AND author_type = ? AND read_by_admin = ?", repairID, constants.AuthorCustomer, false).
		Update("read_by_admin", true)
	return result.RowsAffected, result.Error
}

// CountUnreadByRepairs 统计各维修单的客户未读留言数
func (r *GormRepairMessageRepository) CountUnreadByRepairs(repairIDs []string) ([]UnreadCount, error) {
	if len(repairIDs) == 0 {
		return []UnreadCount{}, nil
	}
	var rows []UnreadCount
	err := r.db.Model(&models.RepairMessage{}).
		Select("repair_id, COUNT(*) AS count").
		Where("repair_id IN ? AND author_type = ? AND read_by_admin = ?", repairIDs, constants.AuthorCustomer, false).
		Group("repair_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
