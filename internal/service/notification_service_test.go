package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/hapitzutzia/internal/config"
	"github.com/hapitzutzia/internal/models"
	"github.com/hapitzutzia/internal/queue"
	"github.com/hapitzutzia/internal/repository"
)

func TestBuildWhatsAppMessage(t *testing.T) {
	other := "Caesarea"
	repair := &models.Repair{
		ID:               "r-1",
		BoardType:        "wing",
		Status:           "ready",
		DeliveryLocation: "other",
		DeliveryOther:    &other,
		Price:            models.NewNullMoney(models.NewMoneyFromFloat(250)),
		Customer:         &models.Customer{Name: "Dana", Phone: "0501112222"},
	}
	message := BuildWhatsAppMessage(repair, "https://track.example/", "Surf Lab")

	for _, want := range []string{
		"🏄 *Surf Lab*",
		"שלום Dana,",
		"📋 *סטטוס:* מוכן לאיסוף",
		"🤙 *סוג גלשן:* גלשן ווינג",
		"💰 *מחיר:* ₪250.00",
		"📍 *מסירה:* אחר (Caesarea)",
		"🔗 מעקב: https://track.example/repair/r-1",
	} {
		if !strings.Contains(message, want) {
			t.Fatalf("message missing %q:\n%s", want, message)
		}
	}

	repair.Price = models.NullMoney{}
	if strings.Contains(BuildWhatsAppMessage(repair, "https://track.example", "Surf Lab"), "₪") {
		t.Fatalf("unpriced repair should not render price line")
	}
}

func TestBuildWhatsAppURL(t *testing.T) {
	got := BuildWhatsAppURL("050-111-2222", "hi there & bye")
	want := "https://wa.me/972501112222?text=hi%20there%20%26%20bye"
	if got != want {
		t.Fatalf("whatsapp url want %s got %s", want, got)
	}
}

func TestDispatchStatusNotifyWebhook(t *testing.T) {
	fx := setupRepairServiceTest(t)
	ctx := context.Background()
	repair, err := fx.service.Create(ctx, CreateRepairInput{Name: "Dana", Phone: "0501112222", BoardType: "sup", Description: "fin box"})
	if err != nil {
		t.Fatalf("create repair failed: %v", err)
	}

	var (
		mu       sync.Mutex
		received []statusWebhookPayload
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body statusWebhookPayload
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		mu.Lock()
		received = append(received, body)
		mu.Unlock()
		if body.NewStatus == "archived" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	settings := NewSettingService(repository.NewSettingRepository(fx.db))
	svc := NewNotificationService(
		repository.NewRepairRepository(fx.db),
		settings,
		config.NotificationConfig{WebhookURL: server.URL, TimeoutSeconds: 2},
		"https://track.example",
	)

	if err := svc.DispatchStatusNotify(ctx, queue.RepairStatusNotifyPayload{RepairID: repair.ID, OldStatus: "waiting", NewStatus: "working"}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if err := svc.DispatchStatusNotify(ctx, queue.RepairStatusNotifyPayload{RepairID: repair.ID, OldStatus: "ready", NewStatus: "archived"}); err == nil {
		t.Fatalf("non-2xx webhook response should return error for retry")
	}
	if err := svc.DispatchStatusNotify(ctx, queue.RepairStatusNotifyPayload{RepairID: "gone", NewStatus: "working"}); err != nil {
		t.Fatalf("deleted repair should be skipped, got %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 2 {
		t.Fatalf("webhook calls want 2 got %d", len(received))
	}
	first := received[0]
	if first.RepairID != repair.ID || first.Phone != "0501112222" || !strings.HasPrefix(first.WhatsAppURL, "https://wa.me/972501112222?text=") {
		t.Fatalf("unexpected webhook payload: %+v", first)
	}
	if !strings.Contains(first.Message, models.DefaultWorkshopName) {
		t.Fatalf("message should fall back to default workshop name: %s", first.Message)
	}
}
