package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hapitzutzia/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStore MinIO / S3 兼容对象存储
type MinIOStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinIOStore 创建 MinIO 存储
func NewMinIOStore(cfg config.MinIOConfig, publicBaseURL string) (*MinIOStore, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" || strings.TrimSpace(cfg.Bucket) == "" {
		return nil, ErrStorageNotConfigured
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}
	if strings.TrimSpace(publicBaseURL) == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicBaseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}
	return &MinIOStore{client: client, bucket: cfg.Bucket, publicBaseURL: publicBaseURL}, nil
}

// EnsureBucket 确保存储桶存在
func (s *MinIOStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("make bucket: %w", err)
	}
	return nil
}

// Put 上传对象
func (s *MinIOStore) Put(ctx context.Context, objectPath string, reader io.Reader, size int64, contentType string) error {
	cleaned, err := cleanObjectPath(objectPath)
	if err != nil {
		return err
	}
	_, err = s.client.PutObject(ctx, s.bucket, cleaned, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload object: %w", err)
	}
	return nil
}

// Delete 批量删除对象
func (s *MinIOStore) Delete(ctx context.Context, objectPaths []string) error {
	var errs []error
	for _, objectPath := range objectPaths {
		cleaned, err := cleanObjectPath(objectPath)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := s.client.RemoveObject(ctx, s.bucket, cleaned, minio.RemoveObjectOptions{}); err != nil {
			errs = append(errs, fmt.Errorf("remove object %s: %w", cleaned, err))
		}
	}
	return errors.Join(errs...)
}

// PublicURL 返回对象访问地址
func (s *MinIOStore) PublicURL(objectPath string) string {
	return joinPublicURL(s.publicBaseURL, objectPath)
}
