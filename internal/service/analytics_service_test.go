package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hapitzutzia/internal/constants"
	"github.com/hapitzutzia/internal/models"
	"github.com/hapitzutzia/internal/repository"

	"github.com/google/uuid"
)

func pricedRepair(boardType string, price *float64, createdAt time.Time, readyAt *time.Time) models.Repair {
	repair := models.Repair{
		ID:        uuid.NewString(),
		BoardType: boardType,
		Status:    constants.RepairStatusWaiting,
		CreatedAt: createdAt,
		ReadyAt:   readyAt,
	}
	if readyAt != nil {
		repair.Status = constants.RepairStatusReady
	}
	if price != nil {
		repair.Price = models.NewNullMoney(models.NewMoneyFromFloat(*price))
	}
	return repair
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func pricePtr(v float64) *float64 {
	return &v
}

func TestComputeAnalyticsScenario(t *testing.T) {
	created := time.Date(2026, 5, 3, 10, 0, 0, 0, time.UTC)
	repairs := []models.Repair{
		pricedRepair(constants.BoardTypeShort, pricePtr(100), created, timePtr(created.Add(48*time.Hour))),
		pricedRepair(constants.BoardTypeShort, nil, created, nil),
		pricedRepair(constants.BoardTypeWing, pricePtr(200), created, timePtr(created.Add(96*time.Hour))),
	}

	summary := ComputeAnalytics(repairs)
	if summary.TotalRepairs != 3 {
		t.Fatalf("total repairs want 3 got %d", summary.TotalRepairs)
	}
	if summary.TotalIncome.String() != "300.00" {
		t.Fatalf("total income want 300.00 got %s", summary.TotalIncome.String())
	}
	if summary.AvgPrice.String() != "150.00" {
		t.Fatalf("avg price want 150.00 got %s", summary.AvgPrice.String())
	}
	if summary.AvgDurationDays != 3 {
		t.Fatalf("avg duration want 3 got %d", summary.AvgDurationDays)
	}
	if summary.ByBoardType[constants.BoardTypeShort] != 2 || summary.ByBoardType[constants.BoardTypeWing] != 1 {
		t.Fatalf("by board type mismatch: %v", summary.ByBoardType)
	}
	if _, ok := summary.ByBoardType[constants.BoardTypeKayak]; ok {
		t.Fatalf("absent board types should not be zero-filled")
	}
	if len(summary.ByBoardType) != 2 {
		t.Fatalf("by board type should only contain present types, got %v", summary.ByBoardType)
	}
}

func TestComputeAnalyticsAvgPriceWithoutCompletedRepairs(t *testing.T) {
	created := time.Date(2026, 5, 3, 10, 0, 0, 0, time.UTC)
	repairs := []models.Repair{
		pricedRepair(constants.BoardTypeSUP, pricePtr(120), created, nil),
	}
	summary := ComputeAnalytics(repairs)
	if !summary.AvgPrice.IsZero() {
		t.Fatalf("avg price should be zero without priced ready repairs, got %s", summary.AvgPrice.String())
	}
	if summary.TotalIncome.String() != "120.00" {
		t.Fatalf("total income want 120.00 got %s", summary.TotalIncome.String())
	}
	if summary.AvgDurationDays != 0 {
		t.Fatalf("avg duration want 0 got %d", summary.AvgDurationDays)
	}

	empty := ComputeAnalytics(nil)
	if empty.TotalRepairs != 0 || !empty.AvgPrice.IsZero() || len(empty.ByBoardType) != 0 {
		t.Fatalf("empty input should yield zero summary, got %+v", empty)
	}
}

func TestComputeAnalyticsIsIdempotent(t *testing.T) {
	created := time.Date(2026, 5, 3, 10, 0, 0, 0, time.UTC)
	repairs := []models.Repair{
		pricedRepair(constants.BoardTypeFoil, pricePtr(99.99), created, timePtr(created.Add(36*time.Hour))),
	}
	first := ComputeAnalytics(repairs)
	second := ComputeAnalytics(repairs)
	if first.TotalIncome.String() != second.TotalIncome.String() || first.AvgDurationDays != second.AvgDurationDays {
		t.Fatalf("results should be identical across calls")
	}
	if first.AvgDurationDays != 2 {
		t.Fatalf("1.5 days should round to 2, got %d", first.AvgDurationDays)
	}
}

func TestResolveAnalyticsWindowStart(t *testing.T) {
	now := time.Date(2026, 3, 18, 15, 30, 0, 0, time.UTC)
	cases := map[string]time.Time{
		constants.AnalyticsPeriodMonth: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		constants.AnalyticsPeriodHalf:  time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		constants.AnalyticsPeriodYear:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for period, want := range cases {
		got, err := ResolveAnalyticsWindowStart(period, now)
		if err != nil {
			t.Fatalf("resolve %s failed: %v", period, err)
		}
		if !got.Equal(want) {
			t.Fatalf("resolve %s want %v got %v", period, want, got)
		}
	}
	if _, err := ResolveAnalyticsWindowStart("decade", now); !errors.Is(err, ErrAnalyticsPeriodInvalid) {
		t.Fatalf("unknown period want ErrAnalyticsPeriodInvalid got %v", err)
	}
}

func TestAnalyticsServiceLoadsWindow(t *testing.T) {
	db := openServiceTestDB(t)
	now := time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)
	customer := &models.Customer{ID: uuid.NewString(), Name: "Dana", Phone: "0501112222"}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	inWindow := pricedRepair(constants.BoardTypeShort, pricePtr(100), now.Add(-24*time.Hour), timePtr(now))
	outOfWindow := pricedRepair(constants.BoardTypeLong, pricePtr(500), time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), nil)
	for _, repair := range []models.Repair{inWindow, outOfWindow} {
		repair.CustomerID = customer.ID
		repair.Description = "x"
		repair.Urgency = constants.UrgencyNormal
		repair.DeliveryLocation = constants.DeliveryPardessHanna
		if err := db.Create(&repair).Error; err != nil {
			t.Fatalf("create repair failed: %v", err)
		}
	}

	svc := NewAnalyticsService(repository.NewRepairRepository(db), 0)
	svc.now = func() time.Time { return now }

	result, err := svc.GetAnalytics(context.Background(), AnalyticsQueryInput{Period: "month", ForceRefresh: true})
	if err != nil {
		t.Fatalf("get analytics failed: %v", err)
	}
	if result.TotalRepairs != 1 || result.TotalIncome.String() != "100.00" {
		t.Fatalf("month window should include one repair, got %+v", result.AnalyticsSummary)
	}
	if result.DateFrom != "2026-03-01T00:00:00Z" {
		t.Fatalf("date_from mismatch, got %s", result.DateFrom)
	}

	yearly, err := svc.GetAnalytics(context.Background(), AnalyticsQueryInput{Period: "year"})
	if err != nil {
		t.Fatalf("get yearly analytics failed: %v", err)
	}
	if yearly.TotalRepairs != 2 {
		t.Fatalf("year window want 2 got %d", yearly.TotalRepairs)
	}

	if _, err := svc.GetAnalytics(context.Background(), AnalyticsQueryInput{Period: "week"}); !errors.Is(err, ErrAnalyticsPeriodInvalid) {
		t.Fatalf("unknown period want ErrAnalyticsPeriodInvalid got %v", err)
	}
}
