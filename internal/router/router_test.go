package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hapitzutzia/internal/config"
	"github.com/hapitzutzia/internal/models"
	"github.com/hapitzutzia/internal/provider"

	"github.com/gin-gonic/gin"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func setupRouterTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := models.OpenDB("sqlite", dsn, models.DBPoolConfig{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Repair{},
		&models.RepairStatusLog{},
		&models.RepairMedia{},
		&models.RepairMessage{},
		&models.Setting{},
	); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}

	cfg := &config.Config{
		Server:  config.ServerConfig{Mode: "debug", BaseURL: "https://repairs.example.com"},
		JWT:     config.JWTConfig{SecretKey: "router-test-secret", ExpireHours: 1},
		Admin:   config.AdminConfig{Password: "shop-pass"},
		Storage: config.StorageConfig{Driver: "local", LocalDir: t.TempDir(), PublicBaseURL: "/uploads"},
	}
	container, err := provider.NewContainerWithDB(cfg, db)
	if err != nil {
		t.Fatalf("new container failed: %v", err)
	}
	t.Cleanup(container.Close)
	return SetupRouter(cfg, container)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) envelope {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "en-US")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("%s %s http status want 200 got %d", method, path, w.Code)
	}
	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal %s %s failed: %v", method, path, err)
	}
	return resp
}

func TestRepairLifecycleOverHTTP(t *testing.T) {
	r := setupRouterTest(t)

	created := doJSON(t, r, http.MethodPost, "/api/v1/public/repairs", "", gin.H{
		"name":        "Dana",
		"phone":       "050-123-4567",
		"board_type":  "short",
		"description": "Fin box cracked",
	})
	if created.StatusCode != 0 {
		t.Fatalf("create repair want 0 got %d (%s)", created.StatusCode, created.Msg)
	}
	var repair struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(created.Data, &repair); err != nil {
		t.Fatalf("decode repair failed: %v", err)
	}
	if repair.ID == "" || repair.Status != "waiting" {
		t.Fatalf("unexpected created repair: %+v", repair)
	}

	listed := doJSON(t, r, http.MethodGet, "/api/v1/public/repairs?phone=0501234567", "", nil)
	var mine []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(listed.Data, &mine); err != nil {
		t.Fatalf("decode list failed: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != repair.ID {
		t.Fatalf("phone lookup should return the created repair, got %+v", mine)
	}

	posted := doJSON(t, r, http.MethodPost, "/api/v1/public/repairs/"+repair.ID+"/messages", "", gin.H{"text": "When is it ready?"})
	if posted.StatusCode != 0 {
		t.Fatalf("post message want 0 got %d", posted.StatusCode)
	}

	if denied := doJSON(t, r, http.MethodGet, "/api/v1/admin/repairs", "", nil); denied.StatusCode != 401 {
		t.Fatalf("admin list without token want 401 got %d", denied.StatusCode)
	}
	if wrong := doJSON(t, r, http.MethodPost, "/api/v1/admin/login", "", gin.H{"password": "nope"}); wrong.StatusCode != 401 {
		t.Fatalf("wrong password want 401 got %d", wrong.StatusCode)
	}

	login := doJSON(t, r, http.MethodPost, "/api/v1/admin/login", "", gin.H{"password": "shop-pass"})
	if login.StatusCode != 0 {
		t.Fatalf("login want 0 got %d (%s)", login.StatusCode, login.Msg)
	}
	var session struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(login.Data, &session); err != nil || session.Token == "" {
		t.Fatalf("decode session failed: %v", err)
	}

	adminList := doJSON(t, r, http.MethodGet, "/api/v1/admin/repairs", session.Token, nil)
	var items []struct {
		ID             string `json:"id"`
		UnreadMessages int64  `json:"unread_messages"`
	}
	if err := json.Unmarshal(adminList.Data, &items); err != nil {
		t.Fatalf("decode admin list failed: %v", err)
	}
	if len(items) != 1 || items[0].UnreadMessages != 1 {
		t.Fatalf("admin list should show one unread message, got %+v", items)
	}

	status := doJSON(t, r, http.MethodPatch, "/api/v1/admin/repairs/"+repair.ID+"/status", session.Token, gin.H{"status": "ready", "note": "done"})
	if status.StatusCode != 0 {
		t.Fatalf("status update want 0 got %d (%s)", status.StatusCode, status.Msg)
	}
	invalid := doJSON(t, r, http.MethodPatch, "/api/v1/admin/repairs/"+repair.ID+"/status", session.Token, gin.H{"status": "lost"})
	if invalid.StatusCode != 400 {
		t.Fatalf("invalid status want 400 got %d", invalid.StatusCode)
	}

	logs := doJSON(t, r, http.MethodGet, "/api/v1/public/repairs/"+repair.ID+"/status-logs", "", nil)
	var history []struct {
		NewStatus string `json:"new_status"`
	}
	if err := json.Unmarshal(logs.Data, &history); err != nil {
		t.Fatalf("decode logs failed: %v", err)
	}
	if len(history) != 2 || history[1].NewStatus != "ready" {
		t.Fatalf("status history mismatch: %+v", history)
	}

	if missing := doJSON(t, r, http.MethodGet, "/api/v1/public/repairs/unknown-id", "", nil); missing.StatusCode != 404 {
		t.Fatalf("unknown repair want 404 got %d", missing.StatusCode)
	}

	logout := doJSON(t, r, http.MethodPost, "/api/v1/admin/logout", session.Token, nil)
	if logout.StatusCode != 0 {
		t.Fatalf("logout want 0 got %d", logout.StatusCode)
	}
	if revoked := doJSON(t, r, http.MethodGet, "/api/v1/admin/repairs", session.Token, nil); revoked.StatusCode != 401 {
		t.Fatalf("revoked token want 401 got %d", revoked.StatusCode)
	}
}

func TestLocalMediaRoute(t *testing.T) {
	cases := map[string]string{
		"":                          "/uploads",
		"/media/":                   "/media",
		"https://cdn.example.com/m": "/uploads",
	}
	for input, want := range cases {
		if got := localMediaRoute(input); got != want {
			t.Fatalf("localMediaRoute(%q) want %s got %s", input, want, got)
		}
	}
}

func TestHealthReportsComponents(t *testing.T) {
	r := setupRouterTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health want 200 got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal health failed: %v", err)
	}
	if body["status"] != "ok" || body["database"] != "ok" || body["redis"] != "disabled" {
		t.Fatalf("unexpected health body: %v", body)
	}
}
