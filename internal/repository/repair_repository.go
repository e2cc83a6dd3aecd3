package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/hapitzutzia/internal/models"

	"gorm.io/gorm"
)

// RepairRepository 维修单数据访问接口
type RepairRepository interface {
	Create(repair *models.Repair) error
	GetByID(id string) (*models.Repair, error)
	List(filter RepairListFilter) ([]models.Repair, int64, error)
	ListCreatedSince(from time.Time) ([]models.Repair, error)
	Update(id string, updates map[string]interface{}) error
	SetMilestoneIfNull(id, column string, at time.Time) error
	Delete(id string) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormRepairRepository
}

// GormRepairRepository GORM 实现
type GormRepairRepository struct {
	db *gorm.DB
}

// NewRepairRepository 创建维修单仓库
func NewRepairRepository(db *gorm.DB) *GormRepairRepository {
	return &GormRepairRepository{db: db}
}

// WithTx 绑定事务
func (r *GormRepairRepository) WithTx(tx *gorm.DB) *GormRepairRepository {
	if tx == nil {
		return r
	}
	return &GormRepairRepository{db: tx}
}

// Transaction 执行事务
func (r *GormRepairRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

func (r *GormRepairRepository) withRelations(query *gorm.DB) *gorm.DB {
	return query.Preload("Customer").Preload("Media", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at asc")
	})
}

// Create 创建维修单
func (r *GormRepairRepository) Create(repair *models.Repair) error {
	return r.db.Create(repair).Error
}

// GetByID 根据 ID 获取维修单（含客户与媒体）
func (r *GormRepairRepository) GetByID(id string) (*models.Repair, error) {
	var repair models.Repair
	if err := r.withRelations(r.db).Where("id = ?", id).First(&repair).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &repair, nil
}

// List 查询维修单列表，按创建时间倒序
func (r *GormRepairRepository) List(filter RepairListFilter) ([]models.Repair, int64, error) {
	query := r.db.Model(&models.Repair{})

	if filter.Phone != "" || filter.Search != "" {
		query = query.Joins("JOIN customers ON customers.id = repairs.customer_id")
	}
	if filter.Phone != "" {
		query = query.Where("customers.phone = ?", filter.Phone)
	}
	if filter.Search != "" {
		condition, args := containsAny([]string{"customers.name", "customers.phone"}, filter.Search)
		query = query.Where(condition, args...)
	}
	if filter.Status != "" {
		query = query.Where("repairs.status = ?", filter.Status)
	}
	if filter.BoardType != "" {
		query = query.Where("repairs.board_type = ?", filter.BoardType)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("repairs.created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("repairs.created_at <= ?", *filter.CreatedTo)
	}
	if filter.PriceMin != nil {
		query = query.Where("repairs.price IS NOT NULL AND repairs.price >= ?", filter.PriceMin.InexactFloat64())
	}
	if filter.PriceMax != nil {
		query = query.Where("repairs.price IS NOT NULL AND repairs.price <= ?", filter.PriceMax.InexactFloat64())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var repairs []models.Repair
	if err := r.withRelations(query.Select("repairs.*")).Order("repairs.created_at desc").Find(&repairs).Error; err != nil {
		return nil, 0, err
	}
	return repairs, total, nil
}

// ListCreatedSince 获取指定时间之后创建的维修单（统计用）
func (r *GormRepairRepository) ListCreatedSince(from time.Time) ([]models.Repair, error) {
	var repairs []models.Repair
	if err := r.db.Where("created_at >= ?", from).Order("created_at asc").Find(&repairs).Error; err != nil {
		return nil, err
	}
	return repairs, nil
}

// Update 更新维修单字段
func (r *GormRepairRepository) Update(id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Repair{}).Where("id = ?", id).Updates(updates).Error
}

// milestoneColumns 允许条件写入的里程碑字段
var milestoneColumns = map[string]struct{}{
	"started_at":  {},
	"ready_at":    {},
	"archived_at": {},
}

// SetMilestoneIfNull 仅在里程碑字段为空时写入
func (r *GormRepairRepository) SetMilestoneIfNull(id, column string, at time.Time) error {
	if _, ok := milestoneColumns[column]; !ok {
		return fmt.Errorf("unsupported milestone column: %s", column)
	}
	return r.db.Model(&models.Repair{}).
		Where("id = ? AND "+column+" IS NULL", id).
		Update(column, at).Error
}

// Delete 删除维修单及其子记录
func (r *GormRepairRepository) Delete(id string) error {
	children := []interface{}{
		&models.RepairMedia{},
		&models.RepairStatusLog{},
		&models.RepairMessage{},
	}
	for _, child := range children {
		if err := r.db.Where("repair_id = ?", id).Delete(child).Error; err != nil {
			return err
		}
	}
	return r.db.Where("id = ?", id).Delete(&models.Repair{}).Error
}
