package task

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ==================== LimiterCleanupTask 限流器清理任务 ====================

// LimiterPruner 可清理的限流器
type LimiterPruner interface {
	Prune(maxAge time.Duration) int
	Len() int
}

// LimiterCleanupTask 定期清理长时间不活跃的客户端限流条目
type LimiterCleanupTask struct {
	limiter LimiterPruner
	maxAge  time.Duration
	spec    string
	logger  *zap.Logger
	cron    *cron.Cron
}

// DefaultLimiterCleanupSpec 每 10 分钟执行一次
const DefaultLimiterCleanupSpec = "0 0/10 * * * *"

// NewLimiterCleanupTask 创建清理任务
// maxAge: 超过该时长未请求的客户端会被移除
func NewLimiterCleanupTask(limiter LimiterPruner, maxAge time.Duration, logger *zap.Logger) *LimiterCleanupTask {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LimiterCleanupTask{
		limiter: limiter,
		maxAge:  maxAge,
		spec:    DefaultLimiterCleanupSpec,
		logger:  logger.Named("LimiterCleanupTask"),
		cron:    cron.New(cron.WithSeconds()), // 支持秒级控制
	}
}

// Start 启动定时清理任务
func (t *LimiterCleanupTask) Start() error {
	_, err := t.cron.AddFunc(t.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		t.Execute(ctx)
	})
	if err != nil {
		return fmt.Errorf("无法启动限流器清理任务: %w", err)
	}

	t.cron.Start()
	t.logger.Info("限流器清理任务已启动",
		zap.String("spec", t.spec),
		zap.Duration("max_age", t.maxAge),
	)
	return nil
}

// Stop 停止任务，等待正在执行的清理结束
func (t *LimiterCleanupTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
	t.logger.Info("已停止")
}

// Execute 执行一次清理，返回清理数量
func (t *LimiterCleanupTask) Execute(ctx context.Context) int {
	select {
	case <-ctx.Done():
		t.logger.Warn("任务上下文已结束，跳过本次清理", zap.Error(ctx.Err()))
		return 0
	default:
	}

	pruned := t.limiter.Prune(t.maxAge)
	t.logger.Debug("清理完成",
		zap.Int("pruned", pruned),
		zap.Int("remaining", t.limiter.Len()),
	)
	return pruned
}
