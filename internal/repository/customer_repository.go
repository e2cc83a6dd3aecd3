package repository

import (
	"errors"

	"github.com/hapitzutzia/internal/models"

	"gorm.io/gorm"
)

// customerSearchLimit 客户搜索默认返回数量
const customerSearchLimit = 10

// CustomerRepository 客户数据访问接口
type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id string) (*models.Customer, error)
	GetByPhone(phone string) (*models.Customer, error)
	UpdateName(id, name string) error
	Search(filter CustomerSearchFilter) ([]models.Customer, error)
	WithTx(tx *gorm.DB) *GormCustomerRepository
}

// GormCustomerRepository GORM 实现
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建客户仓库
func NewCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCustomerRepository) WithTx(tx *gorm.DB) *GormCustomerRepository {
	if tx == nil {
		return r
	}
	return &GormCustomerRepository{db: tx}
}

// Create 创建客户
func (r *GormCustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// GetByID 根据 ID 获取客户
func (r *GormCustomerRepository) GetByID(id string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// GetByPhone 根据规范化手机号获取客户
func (r *GormCustomerRepository) GetByPhone(phone string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("phone = ?", phone).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// UpdateName 更新客户姓名
func (r *GormCustomerRepository) UpdateName(id, name string) error {
	return r.db.Model(&models.Customer{}).Where("id = ?", id).Update("name", name).Error
}

// Search 按姓名或手机号模糊搜索客户
func (r *GormCustomerRepository) Search(filter CustomerSearchFilter) ([]models.Customer, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = customerSearchLimit
	}
	query := r.db.Model(&models.Customer{})
	if filter.Keyword != "" {
		condition, args := containsAny([]string{"name", "phone"}, filter.Keyword)
		query = query.Where(condition, args...)
	}
	var customers []models.Customer
	if err := query.Order("name asc").Limit(limit).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
