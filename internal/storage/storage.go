package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hapitzutzia/internal/config"
	"github.com/hapitzutzia/internal/constants"
)

var (
	// ErrInvalidObjectPath 对象路径非法
	ErrInvalidObjectPath = errors.New("invalid object path")
	// ErrStorageNotConfigured 存储未配置
	ErrStorageNotConfigured = errors.New("storage not configured")
)

// BlobStore 媒体对象存储接口
type BlobStore interface {
	Put(ctx context.Context, objectPath string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, objectPaths []string) error
	PublicURL(objectPath string) string
}

// New 根据配置创建对象存储
func New(cfg config.StorageConfig) (BlobStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", constants.StorageDriverLocal:
		return NewLocalStore(cfg.LocalDir, cfg.PublicBaseURL), nil
	case constants.StorageDriverMinIO:
		return NewMinIOStore(cfg.MinIO, cfg.PublicBaseURL)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}

// cleanObjectPath 规范化对象路径，拒绝越级访问
func cleanObjectPath(objectPath string) (string, error) {
	trimmed := strings.TrimSpace(objectPath)
	if trimmed == "" {
		return "", ErrInvalidObjectPath
	}
	cleaned := path.Clean("/" + trimmed)
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." || strings.HasPrefix(cleaned, "..") {
		return "", ErrInvalidObjectPath
	}
	return cleaned, nil
}

func joinPublicURL(base, objectPath string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	return base + "/" + strings.TrimLeft(objectPath, "/")
}
