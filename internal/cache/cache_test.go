package cache

import (
	"context"
	"testing"
	"time"

	"github.com/hapitzutzia/internal/config"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init disabled redis failed: %v", err)
	}
	ctx := context.Background()
	if Enabled() {
		t.Fatalf("cache should be disabled")
	}
	var dest map[string]int
	hit, err := GetJSON(ctx, "k", &dest)
	if err != nil || hit {
		t.Fatalf("disabled get want miss got hit=%v err=%v", hit, err)
	}
	if err := SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute); err != nil {
		t.Fatalf("disabled set should be noop: %v", err)
	}
	revoked, err := IsAdminSessionRevoked(ctx, "jti")
	if err != nil || revoked {
		t.Fatalf("disabled revoke check want false got %v err=%v", revoked, err)
	}
}

func TestBuildKey(t *testing.T) {
	redisPrefix = "hp"
	if got := BuildKey(" analytics:month "); got != "hp:analytics:month" {
		t.Fatalf("build key mismatch, got %s", got)
	}
	if got := BuildKey(""); got != "hp" {
		t.Fatalf("empty key should return prefix, got %s", got)
	}
}

func TestAnalyticsKey(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := AnalyticsKey("year", from); got != "analytics:year:1767225600" {
		t.Fatalf("analytics key mismatch, got %s", got)
	}
}

func TestPingDisabled(t *testing.T) {
	if err := InitRedis(nil); err != nil {
		t.Fatalf("init nil config failed: %v", err)
	}
	if err := Ping(context.Background()); err != nil {
		t.Fatalf("disabled ping should succeed: %v", err)
	}
	if Client() != nil {
		t.Fatalf("disabled cache should expose nil client")
	}
}
