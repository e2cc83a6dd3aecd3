package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hapitzutzia/internal/cache"
	"github.com/hapitzutzia/internal/constants"
	"github.com/hapitzutzia/internal/logger"
	"github.com/hapitzutzia/internal/models"
	"github.com/hapitzutzia/internal/repository"

	"github.com/shopspring/decimal"
)

const defaultAnalyticsCacheTTL = 45 * time.Second

// AnalyticsService 维修统计服务
// 说明：按统计周期聚合维修数量、收入、平均报价与平均工期。
type AnalyticsService struct {
	repairRepo repository.RepairRepository
	cacheTTL   time.Duration
	now        func() time.Time
}

// NewAnalyticsService 创建统计服务
func NewAnalyticsService(repairRepo repository.RepairRepository, cacheTTL time.Duration) *AnalyticsService {
	if cacheTTL <= 0 {
		cacheTTL = defaultAnalyticsCacheTTL
	}
	return &AnalyticsService{repairRepo: repairRepo, cacheTTL: cacheTTL, now: time.Now}
}

// AnalyticsQueryInput 统计查询输入
type AnalyticsQueryInput struct {
	Period       string
	ForceRefresh bool
}

// AnalyticsSummary 统计结果（纯计算部分）
type AnalyticsSummary struct {
	TotalRepairs    int            `json:"total_repairs"`
	TotalIncome     models.Money   `json:"total_income"`
	AvgPrice        models.Money   `json:"avg_price"`
	AvgDurationDays int64          `json:"avg_duration_days"`
	ByBoardType     map[string]int `json:"by_board_type"`
	ByStatus        map[string]int `json:"by_status"`
}

// AnalyticsResponse 统计接口响应
type AnalyticsResponse struct {
	Period   string `json:"period"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	AnalyticsSummary
}

// ResolveAnalyticsWindowStart 计算统计窗口起点
func ResolveAnalyticsWindowStart(period string, now time.Time) (time.Time, error) {
	switch period {
	case constants.AnalyticsPeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	case constants.AnalyticsPeriodHalf:
		return time.Date(now.Year(), now.Month()-6, 1, 0, 0, 0, 0, now.Location()), nil
	case constants.AnalyticsPeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), nil
	default:
		return time.Time{}, ErrAnalyticsPeriodInvalid
	}
}

// ComputeAnalytics 对维修集合做无副作用聚合
func ComputeAnalytics(repairs []models.Repair) AnalyticsSummary {
	summary := AnalyticsSummary{
		TotalRepairs: len(repairs),
		ByBoardType:  map[string]int{},
		ByStatus:     map[string]int{},
	}

	income := decimal.Zero
	pricedReady := 0
	var durationDaysSum float64
	readyCount := 0
	for _, repair := range repairs {
		summary.ByBoardType[repair.BoardType]++
		summary.ByStatus[repair.Status]++
		if repair.Price.Valid {
			income = income.Add(repair.Price.Money.Decimal)
			if repair.ReadyAt != nil {
				pricedReady++
			}
		}
		if repair.ReadyAt != nil {
			durationDaysSum += repair.ReadyAt.Sub(repair.CreatedAt).Hours() / 24
			readyCount++
		}
	}

	summary.TotalIncome = models.NewMoneyFromDecimal(income)
	if pricedReady > 0 {
		summary.AvgPrice = models.NewMoneyFromDecimal(income.Div(decimal.NewFromInt(int64(pricedReady))))
	} else {
		summary.AvgPrice = models.NewMoneyFromDecimal(decimal.Zero)
	}
	if readyCount > 0 {
		summary.AvgDurationDays = int64(math.Round(durationDaysSum / float64(readyCount)))
	}
	return summary
}

// GetAnalytics 获取统计结果（带短期缓存）
func (s *AnalyticsService) GetAnalytics(ctx context.Context, input AnalyticsQueryInput) (*AnalyticsResponse, error) {
	period := strings.ToLower(strings.TrimSpace(input.Period))
	if period == "" {
		period = constants.AnalyticsPeriodMonth
	}
	now := s.now()
	from, err := ResolveAnalyticsWindowStart(period, now)
	if err != nil {
		return nil, err
	}

	if !input.ForceRefresh {
		var cached AnalyticsResponse
		hit, cacheErr := cache.GetAnalytics(ctx, period, from, &cached)
		if cacheErr != nil {
			logger.Debugw("analytics_cache_read_failed", "period", period, "error", cacheErr)
		}
		if cacheErr == nil && hit {
			return &cached, nil
		}
	}

	repairs, err := s.repairRepo.ListCreatedSince(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalyticsFailed, err)
	}

	response := &AnalyticsResponse{
		Period:           period,
		DateFrom:         from.Format(time.RFC3339),
		DateTo:           now.Format(time.RFC3339),
		AnalyticsSummary: ComputeAnalytics(repairs),
	}
	_ = cache.SetAnalytics(ctx, period, from, response, s.cacheTTL)
	return response, nil
}
