package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hapitzutzia/internal/config"
	"github.com/hapitzutzia/internal/logger"
	"github.com/hapitzutzia/internal/models"
	"github.com/hapitzutzia/internal/queue"
	"github.com/hapitzutzia/internal/repository"
)

var boardTypeLabels = map[string]string{
	"short":     "גלשן גלים שורט",
	"long":      "גלשן גלים לונג",
	"windsurf":  "גלשן רוח",
	"wing":      "גלשן ווינג",
	"sup":       "גלשן סאפ",
	"kayak":     "קייאק",
	"catamaran": "קאטרמן",
	"foil":      "פויל",
	"other":     "אחר",
}

var repairStatusLabels = map[string]string{
	"waiting":  "ממתין לאישור",
	"working":  "בעבודה",
	"ready":    "מוכן לאיסוף",
	"archived": "ארכיון",
}

var deliveryLabels = map[string]string{
	"pardess_hanna": "סדנא בפרדס חנה",
	"shdot_yam":     "חוף שדות ים",
	"other":         "אחר",
}

func labelOf(labels map[string]string, key string) string {
	if label, ok := labels[key]; ok {
		return label
	}
	return key
}

// BuildWhatsAppMessage 生成发给客户的状态更新文本
func BuildWhatsAppMessage(repair *models.Repair, baseURL, workshopName string) string {
	customerName := ""
	if repair.Customer != nil {
		customerName = repair.Customer.Name
	}
	trackingURL := strings.TrimRight(baseURL, "/") + "/repair/" + repair.ID

	lines := []string{
		fmt.Sprintf("🏄 *%s*", workshopName),
		"",
		fmt.Sprintf("שלום %s,", customerName),
		"עדכון על הגלשן שלך:",
		"",
		fmt.Sprintf("📋 *סטטוס:* %s", labelOf(repairStatusLabels, repair.Status)),
		fmt.Sprintf("🤙 *סוג גלשן:* %s", labelOf(boardTypeLabels, repair.BoardType)),
	}
	if repair.Price.Valid && !repair.Price.Money.IsZero() {
		lines = append(lines, fmt.Sprintf("💰 *מחיר:* ₪%s", repair.Price.Money.String()))
	}
	delivery := labelOf(deliveryLabels, repair.DeliveryLocation)
	if repair.DeliveryOther != nil && strings.TrimSpace(*repair.DeliveryOther) != "" {
		delivery = delivery + " (" + strings.TrimSpace(*repair.DeliveryOther) + ")"
	}
	lines = append(lines,
		fmt.Sprintf("📍 *מסירה:* %s", delivery),
		"",
		fmt.Sprintf("🔗 מעקב: %s", trackingURL),
	)
	return strings.Join(lines, "\n")
}

// BuildWhatsAppURL 生成 wa.me 链接
func BuildWhatsAppURL(phone, message string) string {
	international := InternationalPhone(NormalizePhone(phone))
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", international, text)
}

// WhatsAppLink 管理端一键发送信息
type WhatsAppLink struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// statusWebhookPayload 状态通知 webhook 请求体
type statusWebhookPayload struct {
	RepairID    string `json:"repair_id"`
	Phone       string `json:"phone"`
	OldStatus   string `json:"old_status"`
	NewStatus   string `json:"new_status"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// NotificationService 客户通知服务
type NotificationService struct {
	repairRepo     repository.RepairRepository
	settingService *SettingService
	cfg            config.NotificationConfig
	baseURL        string
	httpClient     *http.Client
}

// NewNotificationService 创建通知服务
func NewNotificationService(
	repairRepo repository.RepairRepository,
	settingService *SettingService,
	cfg config.NotificationConfig,
	baseURL string,
) *NotificationService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &NotificationService{
		repairRepo:     repairRepo,
		settingService: settingService,
		cfg:            cfg,
		baseURL:        baseURL,
		httpClient:     &http.Client{Timeout: timeout},
	}
}

func (s *NotificationService) loadRepair(repairID string) (*models.Repair, error) {
	repair, err := s.repairRepo.GetByID(repairID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRepairFetchFailed, err)
	}
	if repair == nil {
		return nil, ErrRepairNotFound
	}
	return repair, nil
}

func (s *NotificationService) buildLink(ctx context.Context, repair *models.Repair) *WhatsAppLink {
	workshopName := models.DefaultWorkshopName
	if s.settingService != nil {
		workshopName = s.settingService.WorkshopName(ctx)
	}
	phone := ""
	if repair.Customer != nil {
		phone = repair.Customer.Phone
	}
	message := BuildWhatsAppMessage(repair, s.baseURL, workshopName)
	return &WhatsAppLink{Phone: phone, Message: message, URL: BuildWhatsAppURL(phone, message)}
}

// WhatsAppLink 获取维修单的 WhatsApp 链接
func (s *NotificationService) WhatsAppLink(ctx context.Context, repairID string) (*WhatsAppLink, error) {
	repair, err := s.loadRepair(strings.TrimSpace(repairID))
	if err != nil {
		return nil, err
	}
	return s.buildLink(ctx, repair), nil
}

// DispatchStatusNotify 处理状态变更通知任务
func (s *NotificationService) DispatchStatusNotify(ctx context.Context, payload queue.RepairStatusNotifyPayload) error {
	repair, err := s.loadRepair(payload.RepairID)
	if errors.Is(err, ErrRepairNotFound) {
		logger.Infow("repair_status_notify_skipped", "repair_id", payload.RepairID, "reason", "repair_deleted")
		return nil
	}
	if err != nil {
		return err
	}
	link := s.buildLink(ctx, repair)

	webhookURL := strings.TrimSpace(s.cfg.WebhookURL)
	if webhookURL == "" {
		logger.Infow("repair_status_notify_logged",
			"repair_id", repair.ID,
			"old_status", payload.OldStatus,
			"new_status", payload.NewStatus,
			"whatsapp_url", link.URL,
		)
		return nil
	}

	body, err := json.Marshal(statusWebhookPayload{
		RepairID:    repair.ID,
		Phone:       link.Phone,
		OldStatus:   payload.OldStatus,
		NewStatus:   payload.NewStatus,
		Message:     link.Message,
		WhatsAppURL: link.URL,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification webhook request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notification webhook request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification webhook returned status %d", resp.StatusCode)
	}
	logger.Infow("repair_status_notify_sent", "repair_id", repair.ID, "new_status", payload.NewStatus)
	return nil
}
