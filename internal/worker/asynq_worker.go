package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/hapitzutzia/internal/logger"
	"github.com/hapitzutzia/internal/provider"
	"github.com/hapitzutzia/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskRepairStatusNotify, c.handleRepairStatusNotify)
	mux.HandleFunc(queue.TaskMediaCleanup, c.handleMediaCleanup)
}

func (c *Consumer) handleRepairStatusNotify(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_repair_status_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.RepairStatusNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_repair_status_notify_unmarshal_failed", "error", err)
		return err
	}
	if strings.TrimSpace(payload.RepairID) == "" {
		logger.Debugw("worker_repair_status_notify_skip_invalid_payload", "repair_id", payload.RepairID)
		return nil
	}
	if c.NotificationService == nil {
		logger.Warnw("worker_repair_status_notify_skip_service_nil", "repair_id", payload.RepairID)
		return nil
	}
	if err := c.NotificationService.DispatchStatusNotify(ctx, payload); err != nil {
		logger.Warnw("worker_repair_status_notify_failed",
			"repair_id", payload.RepairID,
			"new_status", payload.NewStatus,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleMediaCleanup(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_media_cleanup_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.MediaCleanupPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_media_cleanup_unmarshal_failed", "error", err)
		return err
	}
	paths := compactPaths(payload.Paths)
	if len(paths) == 0 {
		logger.Debugw("worker_media_cleanup_skip_empty", "repair_id", payload.RepairID)
		return nil
	}
	if c.BlobStore == nil {
		logger.Warnw("worker_media_cleanup_skip_store_nil", "repair_id", payload.RepairID)
		return nil
	}
	if err := c.BlobStore.Delete(ctx, paths); err != nil {
		logger.Warnw("worker_media_cleanup_failed",
			"repair_id", payload.RepairID,
			"paths", len(paths),
			"error", err,
		)
		return err
	}
	logger.Infow("worker_media_cleanup_done", "repair_id", payload.RepairID, "paths", len(paths))
	return nil
}

// compactPaths 去掉空白与重复路径
func compactPaths(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	result := make([]string, 0, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	return result
}
