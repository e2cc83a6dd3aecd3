package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hapitzutzia/internal/constants"
	"github.com/hapitzutzia/internal/repository"

	"github.com/google/uuid"
)

func TestMessageThread(t *testing.T) {
	fx := setupRepairServiceTest(t)
	ctx := context.Background()
	repair, err := fx.service.Create(ctx, CreateRepairInput{Name: "Dana", Phone: "0501112222", BoardType: "short", Description: "ding"})
	if err != nil {
		t.Fatalf("create repair failed: %v", err)
	}

	svc := NewMessageService(repository.NewRepairMessageRepository(fx.db), repository.NewRepairRepository(fx.db))
	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	step := 0
	svc.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}

	if _, err := svc.Post(ctx, repair.ID, constants.AuthorCustomer, "   "); !errors.Is(err, ErrMessageTextRequired) {
		t.Fatalf("blank text want ErrMessageTextRequired got %v", err)
	}
	if _, err := svc.Post(ctx, repair.ID, "robot", "hello"); !errors.Is(err, ErrAuthorTypeInvalid) {
		t.Fatalf("unknown author want ErrAuthorTypeInvalid got %v", err)
	}
	if _, err := svc.Post(ctx, uuid.NewString(), constants.AuthorCustomer, "hello"); !errors.Is(err, ErrRepairNotFound) {
		t.Fatalf("unknown repair want ErrRepairNotFound got %v", err)
	}

	first, err := svc.Post(ctx, repair.ID, constants.AuthorCustomer, " when is it ready? ")
	if err != nil {
		t.Fatalf("post customer message failed: %v", err)
	}
	if first.ReadByAdmin || first.Text != "when is it ready?" {
		t.Fatalf("customer message should be unread and trimmed, got %+v", first)
	}
	reply, err := svc.Post(ctx, repair.ID, constants.AuthorAdmin, "tomorrow")
	if err != nil {
		t.Fatalf("post admin message failed: %v", err)
	}
	if !reply.ReadByAdmin {
		t.Fatalf("admin message should be read")
	}
	if _, err := svc.Post(ctx, repair.ID, constants.AuthorCustomer, "thanks"); err != nil {
		t.Fatalf("post second customer message failed: %v", err)
	}

	messages, err := svc.List(ctx, repair.ID)
	if err != nil {
		t.Fatalf("list messages failed: %v", err)
	}
	if len(messages) != 3 || messages[0].ID != first.ID || messages[1].ID != reply.ID {
		t.Fatalf("messages should be chronological, got %d", len(messages))
	}

	counts, err := svc.UnreadCounts(ctx, []string{repair.ID})
	if err != nil {
		t.Fatalf("unread counts failed: %v", err)
	}
	if counts[repair.ID] != 2 {
		t.Fatalf("unread want 2 got %d", counts[repair.ID])
	}

	affected, err := svc.MarkReadByAdmin(ctx, repair.ID)
	if err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if affected != 2 {
		t.Fatalf("mark read affected want 2 got %d", affected)
	}
	affected, err = svc.MarkReadByAdmin(ctx, repair.ID)
	if err != nil {
		t.Fatalf("repeat mark read failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("repeat mark read should be idempotent, got %d", affected)
	}
}
