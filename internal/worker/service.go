package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/hapitzutzia/internal/config"
	"github.com/hapitzutzia/internal/logger"
	"github.com/hapitzutzia/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 将 asynq 消费端包装为 Runner 服务
type Service struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewService 创建队列消费服务，队列未启用时返回错误
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	serverCfg.Logger = logger.S().With("component", "asynq")
	serverCfg.ErrorHandler = asynq.ErrorHandlerFunc(reportTaskFailure)

	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{server: asynq.NewServer(opt, serverCfg), mux: mux}, nil
}

func (s *Service) Name() string {
	return "worker"
}

// Start 启动消费协程后阻塞到 ctx 取消
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("worker not initialized")
	}
	if err := s.server.Start(s.mux); err != nil {
		return fmt.Errorf("start asynq server: %w", err)
	}
	<-ctx.Done()
	return nil
}

// Stop 等待进行中的任务结束后退出
func (s *Service) Stop(_ context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	s.server.Shutdown()
	return nil
}

// reportTaskFailure 记录每次失败；重试耗尽时升级为 error
func reportTaskFailure(ctx context.Context, task *asynq.Task, err error) {
	retried, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	fields := []interface{}{"task", task.Type(), "retried", retried, "max_retry", maxRetry, "error", err}
	if retried >= maxRetry {
		logger.Errorw("worker_task_exhausted", fields...)
		return
	}
	logger.Warnw("worker_task_failed", fields...)
}
