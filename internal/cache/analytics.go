package cache

import (
	"context"
	"fmt"
	"time"
)

// AnalyticsKey 构建统计结果缓存键
func AnalyticsKey(period string, from time.Time) string {
	return fmt.Sprintf("analytics:%s:%d", period, from.Unix())
}

// GetAnalytics 读取统计结果缓存
func GetAnalytics(ctx context.Context, period string, from time.Time, dest interface{}) (bool, error) {
	return GetJSON(ctx, AnalyticsKey(period, from), dest)
}

// SetAnalytics 写入统计结果缓存
func SetAnalytics(ctx context.Context, period string, from time.Time, value interface{}, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return SetJSON(ctx, AnalyticsKey(period, from), value, ttl)
}
