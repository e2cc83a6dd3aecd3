package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore 本地磁盘存储，由 HTTP 静态路由对外提供访问
type LocalStore struct {
	rootDir       string
	publicBaseURL string
}

// NewLocalStore 创建本地存储
func NewLocalStore(rootDir, publicBaseURL string) *LocalStore {
	if strings.TrimSpace(rootDir) == "" {
		rootDir = "uploads"
	}
	if strings.TrimSpace(publicBaseURL) == "" {
		publicBaseURL = "/uploads"
	}
	return &LocalStore{rootDir: rootDir, publicBaseURL: publicBaseURL}
}

// RootDir 返回存储根目录
func (s *LocalStore) RootDir() string {
	return s.rootDir
}

// Put 写入对象
func (s *LocalStore) Put(ctx context.Context, objectPath string, reader io.Reader, _ int64, _ string) error {
	cleaned, err := cleanObjectPath(objectPath)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	savePath := filepath.Join(s.rootDir, filepath.FromSlash(cleaned))
	if err := os.MkdirAll(filepath.Dir(savePath), 0755); err != nil {
		return err
	}
	dst, err := os.Create(savePath)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, reader); err != nil {
		return fmt.Errorf("write object: %w", err)
	}
	return nil
}

// Delete 删除对象，已不存在的对象视为成功
func (s *LocalStore) Delete(ctx context.Context, objectPaths []string) error {
	var errs []error
	for _, objectPath := range objectPaths {
		if err := ctx.Err(); err != nil {
			return err
		}
		cleaned, err := cleanObjectPath(objectPath)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		err = os.Remove(filepath.Join(s.rootDir, filepath.FromSlash(cleaned)))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// PublicURL 返回对象访问地址
func (s *LocalStore) PublicURL(objectPath string) string {
	return joinPublicURL(s.publicBaseURL, objectPath)
}
