package task

import (
	"context"
	"time"

	internalApp "github.com/haierkeys/daily-note-link-service/internal/app"

	"go.uber.org/zap"
)

// RunLogCleanTask 清理过期的链接写入历史
type RunLogCleanTask struct {
	app       *internalApp.App
	retention time.Duration
	logger    *zap.Logger
}

// NewRunLogCleanTask 创建历史清理任务
// 保留时间未配置或为 0 时任务关闭，返回 (nil, nil)
func NewRunLogCleanTask(a *internalApp.App, logger *zap.Logger) (Task, error) {
	retention := a.Config().GetRunLogRetention()
	if retention <= 0 {
		return nil, nil
	}

	return &RunLogCleanTask{
		app:       a,
		retention: retention,
		logger:    logger,
	}, nil
}

// Name 返回任务名称
func (t *RunLogCleanTask) Name() string {
	return "DbRunLogCleanTask"
}

// Run 执行清理
func (t *RunLogCleanTask) Run(ctx context.Context) error {
	cutoff := time.Now().Add(-t.retention)

	deleted, err := t.app.DailyNoteService.CleanupRuns(ctx, cutoff)
	if err != nil {
		return err
	}

	if deleted > 0 {
		t.logger.Info(t.Name()+" completed", zap.Int64("deleted", deleted))
	}
	return nil
}

// LoopInterval 返回执行间隔
func (t *RunLogCleanTask) LoopInterval() time.Duration {
	return time.Hour
}

// IsStartupRun 是否立即执行一次
func (t *RunLogCleanTask) IsStartupRun() bool {
	return true
}
