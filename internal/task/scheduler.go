// Package task 实现后台定时任务调度
package task

import (
	"context"
	"time"

	"github.com/haierkeys/daily-note-link-service/pkg/safe_close"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Task 定义任务接口
type Task interface {
	Name() string                  // 任务名称
	Run(ctx context.Context) error // 执行任务
	LoopInterval() time.Duration   // 执行间隔
	IsStartupRun() bool            // 是否立即执行一次
}

// CronTask 定义按 cron 表达式调度的任务接口
type CronTask interface {
	Name() string                  // 任务名称
	Run(ctx context.Context) error // 执行任务
	Schedule() cron.Schedule       // cron 调度计划
}

// Scheduler 任务调度器
type Scheduler struct {
	logger    *zap.Logger
	tasks     []Task
	cronTasks []CronTask
	sc        *safe_close.SafeClose
}

// NewScheduler 创建任务调度器
func NewScheduler(logger *zap.Logger, sc *safe_close.SafeClose) *Scheduler {
	return &Scheduler{
		logger:    logger,
		tasks:     make([]Task, 0),
		cronTasks: make([]CronTask, 0),
		sc:        sc,
	}
}

// AddTask 添加间隔任务
func (s *Scheduler) AddTask(task Task) {
	s.tasks = append(s.tasks, task)
}

// AddCronTask 添加 cron 任务
func (s *Scheduler) AddCronTask(task CronTask) {
	s.cronTasks = append(s.cronTasks, task)
}

// Start 启动所有任务
func (s *Scheduler) Start() {
	if len(s.tasks) == 0 && len(s.cronTasks) == 0 {
		s.logger.Info("no tasks to schedule")
		return
	}

	s.logger.Info("tasks starting ", zap.Int("count", len(s.tasks)+len(s.cronTasks)))

	for _, task := range s.tasks {
		s.startTask(task)
	}
	for _, task := range s.cronTasks {
		s.startCronTask(task)
	}
}

// runTask 执行一次任务，panic 不传播到调度循环
func (s *Scheduler) runTask(name string, run func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("task run panic",
				zap.String("name", name),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()
	if err := run(context.Background()); err != nil {
		s.logger.Error("task running error",
			zap.String("name", name),
			zap.Error(err))
	}
}

// startTask 启动单个间隔任务
func (s *Scheduler) startTask(task Task) {

	s.sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()

		// 如果任务需要立即执行
		if task.IsStartupRun() {
			s.logger.Info("task running", zap.String("name", task.Name()), zap.Bool("startupRun", true))
			go s.runTask(task.Name(), task.Run)
		}

		if task.LoopInterval() <= 0 {
			return
		}

		ticker := time.NewTicker(task.LoopInterval())
		defer ticker.Stop()

		// 定时执行
		for {
			select {
			case <-ticker.C:
				s.logger.Info("task running", zap.String("name", task.Name()), zap.Bool("loopRun", true))
				s.runTask(task.Name(), task.Run)
			case <-closeSignal:
				s.logger.Info("task stopped", zap.String("name", task.Name()), zap.Bool("loopRun", true))
				return
			}
		}
	})
}

// startCronTask 启动单个 cron 任务
func (s *Scheduler) startCronTask(task CronTask) {

	s.sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()

		for {
			next := task.Schedule().Next(time.Now())
			timer := time.NewTimer(time.Until(next))

			select {
			case <-timer.C:
				s.logger.Info("task running", zap.String("name", task.Name()), zap.Bool("cronRun", true))
				s.runTask(task.Name(), task.Run)
			case <-closeSignal:
				timer.Stop()
				s.logger.Info("task stopped", zap.String("name", task.Name()), zap.Bool("cronRun", true))
				return
			}
		}
	})
}
