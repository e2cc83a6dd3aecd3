package worker

import (
	"context"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/hapitzutzia/internal/config"
	"github.com/hapitzutzia/internal/provider"
	"github.com/hapitzutzia/internal/queue"

	"github.com/hibiken/asynq"
)

type blobStoreStub struct {
	deleted   [][]string
	deleteErr error
}

func (s *blobStoreStub) Put(_ context.Context, _ string, _ io.Reader, _ int64, _ string) error {
	return nil
}

func (s *blobStoreStub) Delete(_ context.Context, objectPaths []string) error {
	s.deleted = append(s.deleted, objectPaths)
	return s.deleteErr
}

func (s *blobStoreStub) PublicURL(objectPath string) string {
	return "/uploads/" + objectPath
}

func TestHandleMediaCleanupDeletesPaths(t *testing.T) {
	blob := &blobStoreStub{}
	consumer := NewConsumer(&provider.Container{BlobStore: blob})

	task, err := queue.NewMediaCleanupTask(queue.MediaCleanupPayload{
		RepairID: "r-1",
		Paths:    []string{"r-1/a.jpg", " ", "r-1/a.jpg", "r-1/b.mp4"},
	})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleMediaCleanup(context.Background(), task); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
	if len(blob.deleted) != 1 {
		t.Fatalf("delete should be called once, got %d", len(blob.deleted))
	}
	if !reflect.DeepEqual(blob.deleted[0], []string{"r-1/a.jpg", "r-1/b.mp4"}) {
		t.Fatalf("unexpected deleted paths: %v", blob.deleted[0])
	}
}

func TestHandleMediaCleanupReturnsErrorForRetry(t *testing.T) {
	blob := &blobStoreStub{deleteErr: errors.New("bucket offline")}
	consumer := NewConsumer(&provider.Container{BlobStore: blob})

	task, err := queue.NewMediaCleanupTask(queue.MediaCleanupPayload{RepairID: "r-1", Paths: []string{"r-1/a.jpg"}})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleMediaCleanup(context.Background(), task); err == nil {
		t.Fatalf("store failure should be returned so the task retries")
	}
}

func TestHandleMediaCleanupSkipsEmptyPayload(t *testing.T) {
	blob := &blobStoreStub{}
	consumer := NewConsumer(&provider.Container{BlobStore: blob})

	task, err := queue.NewMediaCleanupTask(queue.MediaCleanupPayload{RepairID: "r-1"})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleMediaCleanup(context.Background(), task); err != nil {
		t.Fatalf("empty payload should be skipped, got %v", err)
	}
	if len(blob.deleted) != 0 {
		t.Fatalf("empty payload should not touch the store")
	}
}

func TestHandleRepairStatusNotifyPayloadErrors(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})

	bad := asynq.NewTask(queue.TaskRepairStatusNotify, []byte("{not-json"))
	if err := consumer.handleRepairStatusNotify(context.Background(), bad); err == nil {
		t.Fatalf("malformed payload should fail")
	}

	empty, err := queue.NewRepairStatusNotifyTask(queue.RepairStatusNotifyPayload{NewStatus: "ready"})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleRepairStatusNotify(context.Background(), empty); err != nil {
		t.Fatalf("payload without repair id should be skipped, got %v", err)
	}

	orphan, err := queue.NewRepairStatusNotifyTask(queue.RepairStatusNotifyPayload{RepairID: "r-1", NewStatus: "ready"})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleRepairStatusNotify(context.Background(), orphan); err != nil {
		t.Fatalf("missing notification service should be skipped, got %v", err)
	}
}

func TestNewServiceRequiresEnabledQueue(t *testing.T) {
	if _, err := NewService(&config.QueueConfig{Enabled: false}, NewConsumer(nil)); err == nil {
		t.Fatalf("disabled queue should not build a worker")
	}
	if _, err := NewService(&config.QueueConfig{Enabled: true}, nil); err == nil {
		t.Fatalf("nil consumer should be rejected")
	}
}
