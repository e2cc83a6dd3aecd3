package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hapitzutzia/internal/constants"
	"github.com/hapitzutzia/internal/models"
)

type mockSettingRepo struct {
	store   map[string]string
	failErr error
}

func newMockSettingRepo() *mockSettingRepo {
	return &mockSettingRepo{store: map[string]string{}}
}

func (m *mockSettingRepo) GetByKey(key string) (*models.Setting, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	value, ok := m.store[key]
	if !ok {
		return nil, nil
	}
	return &models.Setting{Key: key, Value: value}, nil
}

func (m *mockSettingRepo) List() ([]models.Setting, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	rows := make([]models.Setting, 0, len(m.store))
	for key, value := range m.store {
		rows = append(rows, models.Setting{Key: key, Value: value})
	}
	return rows, nil
}

func (m *mockSettingRepo) UpsertMany(values map[string]string) error {
	if m.failErr != nil {
		return m.failErr
	}
	for key, value := range values {
		m.store[key] = value
	}
	return nil
}

func TestSettingUpdateManyNormalized(t *testing.T) {
	svc := NewSettingService(newMockSettingRepo())

	result, err := svc.UpdateMany(context.Background(), map[string]string{
		"payment_link":  "  https://pay.example/board  ",
		"admin_phone":   "+972 52-333-4444",
		"Workshop_Name": " Surf Lab ",
	})
	if err != nil {
		t.Fatalf("update settings failed: %v", err)
	}
	if result[constants.SettingKeyPaymentLink] != "https://pay.example/board" {
		t.Fatalf("payment link not trimmed: %q", result[constants.SettingKeyPaymentLink])
	}
	if result[constants.SettingKeyAdminPhone] != "0523334444" {
		t.Fatalf("admin phone not normalized: %q", result[constants.SettingKeyAdminPhone])
	}
	if result[constants.SettingKeyWorkshopName] != "Surf Lab" {
		t.Fatalf("workshop name not trimmed: %q", result[constants.SettingKeyWorkshopName])
	}
}

func TestSettingUpdateManyRejects(t *testing.T) {
	repo := newMockSettingRepo()
	svc := NewSettingService(repo)
	ctx := context.Background()

	if _, err := svc.UpdateMany(ctx, map[string]string{"theme": "dark"}); !errors.Is(err, ErrSettingKeyInvalid) {
		t.Fatalf("unknown key want ErrSettingKeyInvalid got %v", err)
	}
	if _, err := svc.UpdateMany(ctx, map[string]string{"payment_link": "javascript:alert(1)"}); !errors.Is(err, ErrSettingValueInvalid) {
		t.Fatalf("bad link want ErrSettingValueInvalid got %v", err)
	}
	if _, err := svc.UpdateMany(ctx, map[string]string{"admin_phone": "12345"}); !errors.Is(err, ErrPhoneInvalid) {
		t.Fatalf("bad phone want ErrPhoneInvalid got %v", err)
	}
	if len(repo.store) != 0 {
		t.Fatalf("rejected updates should not persist, got %v", repo.store)
	}

	repo.failErr = errors.New("db down")
	if _, err := svc.UpdateMany(ctx, map[string]string{"workshop_name": "x"}); !errors.Is(err, ErrSettingSaveFailed) {
		t.Fatalf("store failure want ErrSettingSaveFailed got %v", err)
	}
	if name := svc.WorkshopName(ctx); name != models.DefaultWorkshopName {
		t.Fatalf("workshop name should fall back to default, got %s", name)
	}
}

func TestSettingPublicConfigDefaults(t *testing.T) {
	svc := NewSettingService(newMockSettingRepo())
	cfg, err := svc.GetPublicConfig(context.Background())
	if err != nil {
		t.Fatalf("public config failed: %v", err)
	}
	if cfg.WorkshopName != models.DefaultWorkshopName {
		t.Fatalf("workshop name default mismatch: %s", cfg.WorkshopName)
	}
	if cfg.PaymentLink != "" || len(cfg.BoardTypes) != len(constants.BoardTypes) {
		t.Fatalf("unexpected public config: %+v", cfg)
	}
}
