package queue

import (
	"encoding/json"
	"time"

	"github.com/hapitzutzia/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskRepairStatusNotify 维修状态变更通知任务
	TaskRepairStatusNotify = constants.TaskRepairStatusNotify
	// TaskMediaCleanup 媒体对象补偿删除任务
	TaskMediaCleanup = constants.TaskMediaCleanup
)

const (
	notifyMaxRetry       = 3
	notifyTimeout        = 30 * time.Second
	mediaCleanupMaxRetry = 5
)

// RepairStatusNotifyPayload 维修状态通知任务载荷
type RepairStatusNotifyPayload struct {
	RepairID  string `json:"repair_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// MediaCleanupPayload 媒体清理任务载荷
type MediaCleanupPayload struct {
	RepairID string   `json:"repair_id"`
	Paths    []string `json:"paths"`
}

// NewRepairStatusNotifyTask 创建维修状态通知任务
func NewRepairStatusNotifyTask(payload RepairStatusNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskRepairStatusNotify, body,
		asynq.Queue(constants.QueueNotify),
		asynq.MaxRetry(notifyMaxRetry),
		asynq.Timeout(notifyTimeout),
	), nil
}

// NewMediaCleanupTask 创建媒体清理任务
func NewMediaCleanupTask(payload MediaCleanupPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskMediaCleanup, body,
		asynq.Queue(constants.QueueMaintenance),
		asynq.MaxRetry(mediaCleanupMaxRetry),
	), nil
}
