package task

import (
	internalApp "github.com/haierkeys/daily-note-link-service/internal/app"
	"github.com/haierkeys/daily-note-link-service/pkg/safe_close"

	"go.uber.org/zap"
)

// Manager 任务管理器,负责创建和管理所有任务
type Manager struct {
	scheduler *Scheduler
	app       *internalApp.App
	logger    *zap.Logger
}

// NewManager 创建任务管理器
func NewManager(a *internalApp.App, logger *zap.Logger, sc *safe_close.SafeClose) *Manager {
	return &Manager{
		scheduler: NewScheduler(logger, sc),
		app:       a,
		logger:    logger,
	}
}

// RegisterTasks 注册所有任务
func (m *Manager) RegisterTasks() error {
	// 自动写入任务
	autoFlushTask, err := NewAutoFlushTask(m.app, m.logger)
	if err != nil {
		m.logger.Warn("failed to create auto flush task", zap.Error(err))
		return err
	}
	if autoFlushTask != nil {
		m.scheduler.AddCronTask(autoFlushTask)
	} else {
		m.logger.Info("auto flush task is disabled (cron expression not configured)")
	}

	// 历史清理任务
	runLogCleanTask, err := NewRunLogCleanTask(m.app, m.logger)
	if err != nil {
		m.logger.Warn("failed to create run log clean task", zap.Error(err))
		return err
	}
	if runLogCleanTask != nil {
		m.scheduler.AddTask(runLogCleanTask)
	} else {
		m.logger.Info("run log clean task is disabled (retention time not configured)")
	}

	return nil
}

// Start 启动所有已注册的任务
func (m *Manager) Start() {
	m.scheduler.Start()
}
