package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hapitzutzia/internal/models"
	"github.com/hapitzutzia/internal/repository"
)

// CustomerService 客户目录服务
type CustomerService struct {
	repo repository.CustomerRepository
}

// NewCustomerService 创建客户服务
func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// FindByPhone 按手机号查找客户
func (s *CustomerService) FindByPhone(_ context.Context, phone string) (*models.Customer, error) {
	normalized, err := NormalizeAndValidatePhone(phone)
	if err != nil {
		return nil, err
	}
	customer, err := s.repo.GetByPhone(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCustomerFetchFailed, err)
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// Search 按姓名或手机号搜索客户，最多返回 10 条
func (s *CustomerService) Search(_ context.Context, term string) ([]models.Customer, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.Customer{}, nil
	}
	// 搜索词形如电话号码时按规范化形式匹配
	if digits := NormalizePhone(term); len(digits) >= 3 && strings.Map(keepPhoneChars, term) == term {
		term = digits
	}
	customers, err := s.repo.Search(repository.CustomerSearchFilter{Keyword: term})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCustomerFetchFailed, err)
	}
	return customers, nil
}

// keepPhoneChars 保留电话号码中常见的字符
func keepPhoneChars(r rune) rune {
	switch {
	case r >= '0' && r <= '9', r == '+', r == '-', r == ' ', r == '(', r == ')':
		return r
	default:
		return -1
	}
}
