package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hapitzutzia/internal/constants"
	"github.com/hapitzutzia/internal/models"
	"github.com/hapitzutzia/internal/repository"

	"github.com/google/uuid"
)

// maxMessageLength 单条留言最大长度（字符）
const maxMessageLength = 2000

// MessageService 维修单留言服务
type MessageService struct {
	messageRepo repository.RepairMessageRepository
	repairRepo  repository.RepairRepository
	now         func() time.Time
}

// NewMessageService 创建留言服务
func NewMessageService(messageRepo repository.RepairMessageRepository, repairRepo repository.RepairRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo, repairRepo: repairRepo, now: time.Now}
}

func (s *MessageService) ensureRepair(repairID string) error {
	repair, err := s.repairRepo.GetByID(repairID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRepairFetchFailed, err)
	}
	if repair == nil {
		return ErrRepairNotFound
	}
	return nil
}

// Post 追加留言，管理员留言默认已读
func (s *MessageService) Post(_ context.Context, repairID, authorType, text string) (*models.RepairMessage, error) {
	repairID = strings.TrimSpace(repairID)
	authorType = strings.ToLower(strings.TrimSpace(authorType))
	if authorType != constants.AuthorCustomer && authorType != constants.AuthorAdmin {
		return nil, ErrAuthorTypeInvalid
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrMessageTextRequired
	}
	if runes := []rune(text); len(runes) > maxMessageLength {
		text = string(runes[:maxMessageLength])
	}
	if err := s.ensureRepair(repairID); err != nil {
		return nil, err
	}

	message := &models.RepairMessage{
		ID:          uuid.NewString(),
		RepairID:    repairID,
		AuthorType:  authorType,
		Text:        text,
		ReadByAdmin: authorType == constants.AuthorAdmin,
		CreatedAt:   s.now(),
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMessageSaveFailed, err)
	}
	return message, nil
}

// List 获取留言（时间正序）
func (s *MessageService) List(_ context.Context, repairID string) ([]models.RepairMessage, error) {
	repairID = strings.TrimSpace(repairID)
	if err := s.ensureRepair(repairID); err != nil {
		return nil, err
	}
	messages, err := s.messageRepo.ListByRepair(repairID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMessageFetchFailed, err)
	}
	return messages, nil
}

// MarkReadByAdmin 将客户留言标记为已读，可重复调用
func (s *MessageService) MarkReadByAdmin(_ context.Context, repairID string) (int64, error) {
	repairID = strings.TrimSpace(repairID)
	if err := s.ensureRepair(repairID); err != nil {
		return 0, err
	}
	affected, err := s.messageRepo.MarkCustomerMessagesRead(repairID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMessageSaveFailed, err)
	}
	return affected, nil
}

// UnreadCounts 获取各维修单客户未读留言数
func (s *MessageService) UnreadCounts(_ context.Context, repairIDs []string) (map[string]int64, error) {
	rows, err := s.messageRepo.CountUnreadByRepairs(repairIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMessageFetchFailed, err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.RepairID] = row.Count
	}
	return counts, nil
}
