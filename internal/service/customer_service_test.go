package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hapitzutzia/internal/models"
	"github.com/hapitzutzia/internal/repository"

	"github.com/google/uuid"
)

func TestCustomerFindAndSearch(t *testing.T) {
	db := openServiceTestDB(t)
	for _, customer := range []models.Customer{
		{ID: uuid.NewString(), Name: "Dana Cohen", Phone: "0501112222"},
		{ID: uuid.NewString(), Name: "Yoav Mizrahi", Phone: "0549998888"},
	} {
		if err := db.Create(&customer).Error; err != nil {
			t.Fatalf("create customer failed: %v", err)
		}
	}
	svc := NewCustomerService(repository.NewCustomerRepository(db))
	ctx := context.Background()

	found, err := svc.FindByPhone(ctx, "+972-50-111-2222")
	if err != nil {
		t.Fatalf("find by international phone failed: %v", err)
	}
	if found.Name != "Dana Cohen" {
		t.Fatalf("unexpected customer: %+v", found)
	}
	if _, err := svc.FindByPhone(ctx, "0520000000"); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("unknown phone want ErrCustomerNotFound got %v", err)
	}
	if _, err := svc.FindByPhone(ctx, "12"); !errors.Is(err, ErrPhoneInvalid) {
		t.Fatalf("short phone want ErrPhoneInvalid got %v", err)
	}

	byName, err := svc.Search(ctx, "dana")
	if err != nil {
		t.Fatalf("search by name failed: %v", err)
	}
	if len(byName) != 1 || byName[0].Phone != "0501112222" {
		t.Fatalf("name search should be case-insensitive, got %+v", byName)
	}

	byPhone, err := svc.Search(ctx, "054-999")
	if err != nil {
		t.Fatalf("search by phone failed: %v", err)
	}
	if len(byPhone) != 1 || byPhone[0].Name != "Yoav Mizrahi" {
		t.Fatalf("formatted phone fragment should match, got %+v", byPhone)
	}

	empty, err := svc.Search(ctx, "   ")
	if err != nil || len(empty) != 0 {
		t.Fatalf("blank search should return nothing, got %v %v", empty, err)
	}
}
