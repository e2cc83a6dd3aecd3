package cache

import (
	"context"
	"strings"
	"time"
)

func revokedSessionKey(tokenID string) string {
	return "auth:admin:revoked:" + strings.TrimSpace(tokenID)
}

// RevokeAdminSession 吊销管理端会话，保留到令牌过期
func RevokeAdminSession(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if strings.TrimSpace(tokenID) == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return SetJSON(ctx, revokedSessionKey(tokenID), expiresAt.Unix(), ttl)
}

// IsAdminSessionRevoked 判断管理端会话是否已吊销
func IsAdminSessionRevoked(ctx context.Context, tokenID string) (bool, error) {
	if strings.TrimSpace(tokenID) == "" {
		return false, nil
	}
	return Exists(ctx, revokedSessionKey(tokenID))
}
