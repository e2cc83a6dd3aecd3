package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hapitzutzia/internal/config"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// blockingService 阻塞直到上下文取消
type blockingService struct {
	name    string
	stopped atomic.Bool
}

func (s *blockingService) Name() string { return s.name }

func (s *blockingService) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (s *blockingService) Stop(context.Context) error {
	s.stopped.Store(true)
	return nil
}

// failingService 启动即失败
type failingService struct {
	err error
}

func (s *failingService) Name() string { return "failing" }

func (s *failingService) Start(context.Context) error { return s.err }

func (s *failingService) Stop(context.Context) error { return nil }

func TestRunnerStopsAllServicesOnCancel(t *testing.T) {
	http := &blockingService{name: "http"}
	worker := &blockingService{name: "worker"}
	runner := NewRunner(http, worker)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := runner.Run(ctx, time.Second, nil); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("run returned unexpected error: %v", err)
	}
	if !http.stopped.Load() || !worker.stopped.Load() {
		t.Fatalf("every service should be stopped")
	}
}

func TestRunnerReturnsStartError(t *testing.T) {
	boom := errors.New("listen failed")
	companion := &blockingService{name: "http"}
	runner := NewRunner(&failingService{err: boom}, companion)

	err := runner.Run(context.Background(), time.Second, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("run error want %v got %v", boom, err)
	}
	if !companion.stopped.Load() {
		t.Fatalf("companion service should be stopped after a failure")
	}
}

func TestRunnerWithoutServices(t *testing.T) {
	if err := NewRunner().Run(context.Background(), time.Second, nil); err == nil {
		t.Fatalf("empty runner should fail")
	}
}

func TestBuildServicesRequiresQueueForWorkerMode(t *testing.T) {
	cfg := &config.Config{}
	if _, err := buildServices(cfg, ModeWorker, nil); err == nil {
		t.Fatalf("worker mode without queue should fail")
	}
	if _, err := buildServices(cfg, "unknown", nil); err == nil {
		t.Fatalf("unknown mode should fail")
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]string{
		"":       ModeAll,
		" API ":  ModeAPI,
		"worker": ModeWorker,
		"all":    ModeAll,
	}
	for raw, want := range cases {
		got, err := ParseMode(raw)
		if err != nil || got != want {
			t.Fatalf("parse %q want %s got %s (%v)", raw, want, got, err)
		}
	}
	if _, err := ParseMode("cron"); err == nil {
		t.Fatalf("unknown mode should fail")
	}
}
