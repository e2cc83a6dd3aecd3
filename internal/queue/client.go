package queue

import (
	"fmt"
	"strings"
	"time"

	"github.com/hapitzutzia/internal/config"
	"github.com/hapitzutzia/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	defaultConcurrency = 5
	defaultRedisHost   = "127.0.0.1"
	defaultRedisPort   = 6379
)

// Client 队列投递端；队列未启用时所有投递为空操作
type Client struct {
	client *asynq.Client
}

// NewClient 创建队列客户端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{}, nil
	}
	return &Client{client: asynq.NewClient(redisOpt(cfg))}, nil
}

// Enabled 判断是否启用
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

// EnqueueRepairStatusNotify 投递状态变更通知
func (c *Client) EnqueueRepairStatusNotify(payload RepairStatusNotifyPayload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewRepairStatusNotifyTask(payload)
	if err != nil {
		return err
	}
	return c.enqueue(task, opts...)
}

// EnqueueMediaCleanup 投递媒体对象补偿删除，delay 后首次执行
func (c *Client) EnqueueMediaCleanup(payload MediaCleanupPayload, delay time.Duration) error {
	if !c.Enabled() || len(payload.Paths) == 0 {
		return nil
	}
	task, err := NewMediaCleanupTask(payload)
	if err != nil {
		return err
	}
	return c.enqueue(task, asynq.ProcessIn(max(delay, 0)))
}

func (c *Client) enqueue(task *asynq.Task, opts ...asynq.Option) error {
	if _, err := c.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("enqueue %s: %w", task.Type(), err)
	}
	return nil
}

// BuildServerConfig 生成消费端配置，未配置队列权重时使用内置两级队列
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	concurrency := defaultConcurrency
	queues := map[string]int{
		constants.QueueNotify:      6,
		constants.QueueMaintenance: 1,
	}
	if cfg != nil {
		if cfg.Concurrency > 0 {
			concurrency = cfg.Concurrency
		}
		if len(cfg.Queues) > 0 {
			queues = cfg.Queues
		}
	}
	return redisOpt(cfg), asynq.Config{
		Concurrency: concurrency,
		Queues:      queues,
	}
}

func redisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	opt := asynq.RedisClientOpt{Addr: fmt.Sprintf("%s:%d", defaultRedisHost, defaultRedisPort)}
	if cfg == nil {
		return opt
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = defaultRedisHost
	}
	port := cfg.Port
	if port <= 0 {
		port = defaultRedisPort
	}
	opt.Addr = fmt.Sprintf("%s:%d", host, port)
	opt.Password = cfg.Password
	opt.DB = cfg.DB
	return opt
}
