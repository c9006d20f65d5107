package task

import (
	"context"

	internalApp "github.com/haierkeys/daily-note-link-service/internal/app"
	"github.com/haierkeys/daily-note-link-service/internal/domain"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// AutoFlushTask 按 cron 表达式自动把待写入集合写入当日日记
type AutoFlushTask struct {
	app      *internalApp.App
	schedule cron.Schedule
	logger   *zap.Logger
}

// NewAutoFlushTask 创建自动写入任务
// cron 表达式为空时任务关闭，返回 (nil, nil)
func NewAutoFlushTask(a *internalApp.App, logger *zap.Logger) (CronTask, error) {
	expr := a.Config().App.AutoFlushCron
	if expr == "" {
		return nil, nil
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(expr)
	if err != nil {
		return nil, err
	}

	return &AutoFlushTask{
		app:      a,
		schedule: schedule,
		logger:   logger,
	}, nil
}

// Name 返回任务名称
func (t *AutoFlushTask) Name() string {
	return "AutoFlushTask"
}

// Schedule 返回 cron 调度计划
func (t *AutoFlushTask) Schedule() cron.Schedule {
	return t.schedule
}

// Run 执行自动写入
func (t *AutoFlushTask) Run(ctx context.Context) error {
	result, err := t.app.DailyNoteService.Flush(ctx, domain.LinkRunTriggerCron)
	if err != nil {
		return err
	}

	t.logger.Info(t.Name()+" completed",
		zap.String("date", result.Date),
		zap.Int("filesLinked", result.FilesLinked))
	return nil
}
