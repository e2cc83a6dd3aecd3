package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hapitzutzia/internal/constants"
	"github.com/hapitzutzia/internal/logger"
	"github.com/hapitzutzia/internal/models"
	"github.com/hapitzutzia/internal/queue"
	"github.com/hapitzutzia/internal/repository"
	"github.com/hapitzutzia/internal/storage"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// mediaCleanupDelay 媒体补偿删除任务首次执行延迟
const mediaCleanupDelay = time.Minute

// TaskEnqueuer 异步任务投递接口
type TaskEnqueuer interface {
	EnqueueRepairStatusNotify(payload queue.RepairStatusNotifyPayload, opts ...asynq.Option) error
	EnqueueMediaCleanup(payload queue.MediaCleanupPayload, delay time.Duration) error
}

// RepairService 维修单服务
type RepairService struct {
	repairRepo    repository.RepairRepository
	customerRepo  repository.CustomerRepository
	statusLogRepo repository.RepairStatusLogRepository
	mediaRepo     repository.RepairMediaRepository
	blobStore     storage.BlobStore
	queueClient   TaskEnqueuer
	now           func() time.Time
}

// NewRepairService 创建维修单服务
func NewRepairService(
	repairRepo repository.RepairRepository,
	customerRepo repository.CustomerRepository,
	statusLogRepo repository.RepairStatusLogRepository,
	mediaRepo repository.RepairMediaRepository,
	blobStore storage.BlobStore,
	queueClient TaskEnqueuer,
) *RepairService {
	return &RepairService{
		repairRepo:    repairRepo,
		customerRepo:  customerRepo,
		statusLogRepo: statusLogRepo,
		mediaRepo:     mediaRepo,
		blobStore:     blobStore,
		queueClient:   queueClient,
		now:           time.Now,
	}
}

// CreateRepairInput 创建维修单输入
type CreateRepairInput struct {
	Name             string
	Phone            string
	BoardType        string
	Description      string
	Urgency          string
	DeliveryLocation string
	DeliveryOther    string
}

// RepairListInput 维修单列表查询输入
type RepairListInput struct {
	Page        int
	PageSize    int
	Status      string
	BoardType   string
	Phone       string
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
}

var boardTypeSet = buildStringSet(constants.BoardTypes)

var repairStatusSet = buildStringSet(constants.RepairStatuses)

var urgencySet = buildStringSet([]string{constants.UrgencyUrgent, constants.UrgencyNormal})

var deliveryLocationSet = buildStringSet([]string{
	constants.DeliveryPardessHanna,
	constants.DeliveryShdotYam,
	constants.DeliveryOther,
})

// statusMilestoneColumn 状态对应的里程碑字段
var statusMilestoneColumn = map[string]string{
	constants.RepairStatusWorking:  "started_at",
	constants.RepairStatusReady:    "ready_at",
	constants.RepairStatusArchived: "archived_at",
}

func buildStringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// IsValidBoardType 判断板型是否合法
func IsValidBoardType(value string) bool {
	_, ok := boardTypeSet[value]
	return ok
}

// IsValidRepairStatus 判断维修状态是否合法
func IsValidRepairStatus(value string) bool {
	_, ok := repairStatusSet[value]
	return ok
}

type normalizedRepairInput struct {
	name             string
	phone            string
	boardType        string
	description      string
	urgency          string
	deliveryLocation string
	deliveryOther    *string
}

func normalizeCreateRepairInput(input CreateRepairInput) (*normalizedRepairInput, error) {
	phone, err := NormalizeAndValidatePhone(input.Phone)
	if err != nil {
		return nil, err
	}
	boardType := strings.ToLower(strings.TrimSpace(input.BoardType))
	if boardType == "" {
		return nil, ErrBoardTypeRequired
	}
	if !IsValidBoardType(boardType) {
		return nil, ErrBoardTypeInvalid
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	urgency := strings.ToLower(strings.TrimSpace(input.Urgency))
	if urgency == "" {
		urgency = constants.UrgencyNormal
	}
	if _, ok := urgencySet[urgency]; !ok {
		return nil, ErrUrgencyInvalid
	}
	location := strings.ToLower(strings.TrimSpace(input.DeliveryLocation))
	if location == "" {
		location = constants.DeliveryPardessHanna
	}
	if _, ok := deliveryLocationSet[location]; !ok {
		return nil, ErrDeliveryLocationInvalid
	}
	var deliveryOther *string
	if location == constants.DeliveryOther {
		if other := strings.TrimSpace(input.DeliveryOther); other != "" {
			deliveryOther = &other
		}
	}
	return &normalizedRepairInput{
		name:             strings.TrimSpace(input.Name),
		phone:            phone,
		boardType:        boardType,
		description:      description,
		urgency:          urgency,
		deliveryLocation: location,
		deliveryOther:    deliveryOther,
	}, nil
}

// Create 创建维修单：解析或创建客户，写入维修单与首条状态日志
func (s *RepairService) Create(ctx context.Context, input CreateRepairInput) (*models.Repair, error) {
	normalized, err := normalizeCreateRepairInput(input)
	if err != nil {
		return nil, err
	}

	now := s.now()
	repair := &models.Repair{
		ID:               uuid.NewString(),
		BoardType:        normalized.boardType,
		Description:      normalized.description,
		Urgency:          normalized.urgency,
		DeliveryLocation: normalized.deliveryLocation,
		DeliveryOther:    normalized.deliveryOther,
		Status:           constants.RepairStatusWaiting,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	var customer *models.Customer
	err = s.repairRepo.Transaction(func(tx *gorm.DB) error {
		resolved, err := s.resolveCustomer(tx, normalized, now)
		if err != nil {
			return err
		}
		customer = resolved
		repair.CustomerID = resolved.ID

		if err := s.repairRepo.WithTx(tx).Create(repair); err != nil {
			return fmt.Errorf("%w: %w", ErrRepairCreateFailed, err)
		}
		entry := &models.RepairStatusLog{
			ID:        uuid.NewString(),
			RepairID:  repair.ID,
			NewStatus: constants.RepairStatusWaiting,
			ChangedAt: now,
		}
		if err := s.statusLogRepo.WithTx(tx).Create(entry); err != nil {
			return fmt.Errorf("%w: %w", ErrRepairCreateFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	repair.Customer = customer
	repair.Media = []models.RepairMedia{}
	logger.Infow("repair_created",
		"repair_id", repair.ID,
		"customer_id", customer.ID,
		"board_type", repair.BoardType,
	)
	return repair, nil
}

// resolveCustomer 按规范化手机号复用客户，不存在时创建
func (s *RepairService) resolveCustomer(tx *gorm.DB, input *normalizedRepairInput, now time.Time) (*models.Customer, error) {
	customerRepo := s.customerRepo.WithTx(tx)
	existing, err := customerRepo.GetByPhone(input.phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCustomerFetchFailed, err)
	}
	if existing != nil {
		return existing, nil
	}
	if input.name == "" {
		return nil, ErrCustomerNameRequired
	}
	customer := &models.Customer{
		ID:        uuid.NewString(),
		Name:      input.name,
		Phone:     input.phone,
		CreatedAt: now,
	}
	// 并发创建同一手机号时唯一索引冲突，回滚到保存点后复用已存在的客户
	createErr := tx.Transaction(func(inner *gorm.DB) error {
		return s.customerRepo.WithTx(inner).Create(customer)
	})
	if createErr == nil {
		return customer, nil
	}
	existing, err = customerRepo.GetByPhone(input.phone)
	if err != nil || existing == nil {
		return nil, fmt.Errorf("%w: %w", ErrRepairCreateFailed, createErr)
	}
	return existing, nil
}

// Get 获取维修单详情
func (s *RepairService) Get(_ context.Context, id string) (*models.Repair, error) {
	repair, err := s.repairRepo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepairFetchFailed, err)
	}
	if repair == nil {
		return nil, ErrRepairNotFound
	}
	return repair, nil
}

// Transition 变更维修状态：首次进入状态时写入里程碑，每次变更都追加日志
func (s *RepairService) Transition(ctx context.Context, id, newStatus, note string) (*models.Repair, error) {
	id = strings.TrimSpace(id)
	newStatus = strings.ToLower(strings.TrimSpace(newStatus))
	if !IsValidRepairStatus(newStatus) {
		return nil, ErrRepairStatusInvalid
	}

	now := s.now()
	var oldStatus string
	err := s.repairRepo.Transaction(func(tx *gorm.DB) error {
		repairRepo := s.repairRepo.WithTx(tx)
		current, err := repairRepo.GetByID(id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRepairFetchFailed, err)
		}
		if current == nil {
			return ErrRepairNotFound
		}
		oldStatus = current.Status

		if err := repairRepo.Update(id, map[string]interface{}{
			"status":     newStatus,
			"updated_at": now,
		}); err != nil {
			return fmt.Errorf("%w: %w", ErrRepairUpdateFailed, err)
		}
		if column, ok := statusMilestoneColumn[newStatus]; ok {
			if err := repairRepo.SetMilestoneIfNull(id, column, now); err != nil {
				return fmt.Errorf("%w: %w", ErrRepairUpdateFailed, err)
			}
		}

		entry := &models.RepairStatusLog{
			ID:        uuid.NewString(),
			RepairID:  id,
			OldStatus: &oldStatus,
			NewStatus: newStatus,
			ChangedAt: now,
		}
		if trimmed := strings.TrimSpace(note); trimmed != "" {
			entry.Note = &trimmed
		}
		if err := s.statusLogRepo.WithTx(tx).Create(entry); err != nil {
			return fmt.Errorf("%w: %w", ErrRepairUpdateFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("repair_status_changed",
		"repair_id", id,
		"old_status", oldStatus,
		"new_status", newStatus,
	)
	s.enqueueStatusNotify(id, oldStatus, newStatus)
	return s.Get(ctx, id)
}

func (s *RepairService) enqueueStatusNotify(id, oldStatus, newStatus string) {
	if s.queueClient == nil {
		return
	}
	err := s.queueClient.EnqueueRepairStatusNotify(queue.RepairStatusNotifyPayload{
		RepairID:  id,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	})
	if err != nil {
		logger.Warnw("repair_status_notify_enqueue_failed", "repair_id", id, "new_status", newStatus, "error", err)
	}
}

// SetPrice 设置报价，nil 表示清空
func (s *RepairService) SetPrice(ctx context.Context, id string, price *models.Money) (*models.Repair, error) {
	id = strings.TrimSpace(id)
	if price != nil && price.IsNegative() {
		return nil, ErrPriceInvalid
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	value := models.NullMoney{}
	if price != nil {
		value = models.NewNullMoney(*price)
	}
	if err := s.repairRepo.Update(id, map[string]interface{}{
		"price":      value,
		"updated_at": s.now(),
	}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepairUpdateFailed, err)
	}
	return s.Get(ctx, id)
}

// Delete 删除维修单：先尽力删除媒体对象，失败时投递补偿任务，再删除记录
func (s *RepairService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	paths, err := s.mediaRepo.ListStoragePaths(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMediaFetchFailed, err)
	}
	if len(paths) > 0 && s.blobStore != nil {
		if err := s.blobStore.Delete(ctx, paths); err != nil {
			logger.Warnw("repair_media_delete_failed", "repair_id", id, "paths", len(paths), "error", err)
			s.enqueueMediaCleanup(id, paths)
		}
	}

	err = s.repairRepo.Transaction(func(tx *gorm.DB) error {
		return s.repairRepo.WithTx(tx).Delete(id)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRepairDeleteFailed, err)
	}
	logger.Infow("repair_deleted", "repair_id", id, "media_count", len(paths))
	return nil
}

func (s *RepairService) enqueueMediaCleanup(repairID string, paths []string) {
	if s.queueClient == nil {
		return
	}
	err := s.queueClient.EnqueueMediaCleanup(queue.MediaCleanupPayload{
		RepairID: repairID,
		Paths:    paths,
	}, mediaCleanupDelay)
	if err != nil {
		logger.Warnw("repair_media_cleanup_enqueue_failed", "repair_id", repairID, "error", err)
	}
}

// List 查询维修单列表（最新在前）
func (s *RepairService) List(_ context.Context, input RepairListInput) ([]models.Repair, int64, error) {
	filter := repository.RepairListFilter{
		Page:        input.Page,
		PageSize:    input.PageSize,
		Search:      strings.TrimSpace(input.Search),
		CreatedFrom: input.CreatedFrom,
		CreatedTo:   input.CreatedTo,
		PriceMin:    input.PriceMin,
		PriceMax:    input.PriceMax,
	}
	if status := strings.ToLower(strings.TrimSpace(input.Status)); status != "" {
		if !IsValidRepairStatus(status) {
			return nil, 0, ErrRepairStatusInvalid
		}
		filter.Status = status
	}
	if boardType := strings.ToLower(strings.TrimSpace(input.BoardType)); boardType != "" {
		if !IsValidBoardType(boardType) {
			return nil, 0, ErrBoardTypeInvalid
		}
		filter.BoardType = boardType
	}
	if strings.TrimSpace(input.Phone) != "" {
		phone, err := NormalizeAndValidatePhone(input.Phone)
		if err != nil {
			return nil, 0, err
		}
		filter.Phone = phone
	}

	repairs, total, err := s.repairRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrRepairFetchFailed, err)
	}
	return repairs, total, nil
}

// ListByPhone 客户按手机号查询自己的维修单
func (s *RepairService) ListByPhone(ctx context.Context, phone string) ([]models.Repair, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, ErrPhoneInvalid
	}
	repairs, _, err := s.List(ctx, RepairListInput{Phone: phone})
	return repairs, err
}

// StatusLogs 获取状态历史（时间正序）
func (s *RepairService) StatusLogs(ctx context.Context, id string) ([]models.RepairStatusLog, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	logs, err := s.statusLogRepo.ListByRepair(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepairFetchFailed, err)
	}
	return logs, nil
}
