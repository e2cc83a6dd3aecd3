package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hapitzutzia/internal/config"
)

func TestLocalStorePutAndDelete(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root, "/uploads/")
	ctx := context.Background()

	objectPath := "repair-1/customer-img-1700000000000-0.jpg"
	if err := store.Put(ctx, objectPath, strings.NewReader("jpeg-bytes"), 10, "image/jpeg"); err != nil {
		t.Fatalf("put object failed: %v", err)
	}
	content, err := os.ReadFile(filepath.Join(root, "repair-1", "customer-img-1700000000000-0.jpg"))
	if err != nil {
		t.Fatalf("read stored object failed: %v", err)
	}
	if string(content) != "jpeg-bytes" {
		t.Fatalf("stored content mismatch, got %s", string(content))
	}

	if got := store.PublicURL(objectPath); got != "/uploads/"+objectPath {
		t.Fatalf("public url mismatch, got %s", got)
	}

	if err := store.Delete(ctx, []string{objectPath, "repair-1/missing.jpg"}); err != nil {
		t.Fatalf("delete should ignore missing objects: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "repair-1", "customer-img-1700000000000-0.jpg")); !os.IsNotExist(err) {
		t.Fatalf("object should be removed")
	}
}

func TestLocalStoreRejectsTraversal(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "")
	err := store.Put(context.Background(), "  ", strings.NewReader("x"), 1, "text/plain")
	if !errors.Is(err, ErrInvalidObjectPath) {
		t.Fatalf("empty path want ErrInvalidObjectPath got %v", err)
	}
}

func TestCleanObjectPath(t *testing.T) {
	cases := map[string]string{
		"a/b.jpg":        "a/b.jpg",
		"/a/./b.jpg":     "a/b.jpg",
		"../../etc/pass": "etc/pass",
	}
	for input, want := range cases {
		got, err := cleanObjectPath(input)
		if err != nil {
			t.Fatalf("clean %q failed: %v", input, err)
		}
		if got != want {
			t.Fatalf("clean %q want %s got %s", input, want, got)
		}
	}
}

func TestNewSelectsDriver(t *testing.T) {
	store, err := New(config.StorageConfig{Driver: "local", LocalDir: t.TempDir()})
	if err != nil {
		t.Fatalf("new local store failed: %v", err)
	}
	if _, ok := store.(*LocalStore); !ok {
		t.Fatalf("want *LocalStore got %T", store)
	}
	if _, err := New(config.StorageConfig{Driver: "minio"}); !errors.Is(err, ErrStorageNotConfigured) {
		t.Fatalf("minio without endpoint want ErrStorageNotConfigured got %v", err)
	}
	if _, err := New(config.StorageConfig{Driver: "ftp"}); err == nil {
		t.Fatalf("unknown driver should fail")
	}
}
