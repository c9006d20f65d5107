// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/haierkeys/daily-note-link-service/internal/dao"
	"github.com/haierkeys/daily-note-link-service/internal/domain"
	"github.com/haierkeys/daily-note-link-service/internal/service"
	"github.com/haierkeys/daily-note-link-service/internal/tracker"
	pkgapp "github.com/haierkeys/daily-note-link-service/pkg/app"
	"github.com/haierkeys/daily-note-link-service/pkg/storage/local_fs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// 仓库存储与修改跟踪
	VaultFS   domain.VaultFS
	VaultRoot string
	Tracker   *tracker.Tracker

	// Repository 层
	SettingRepo domain.SettingRepository
	LinkRunRepo domain.LinkRunRepository

	// Service 层
	SettingService   service.SettingService
	DailyNoteService service.DailyNoteService

	// StartTime 容器启动时间，用于健康检查的 uptime
	StartTime time.Time
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config:    cfg,
		logger:    logger,
		DB:        db,
		StartTime: time.Now(),
	}

	// 初始化仓库存储
	vaultFS, err := local_fs.NewClient(&cfg.Vault.Config)
	if err != nil {
		return nil, fmt.Errorf("vault storage init failed: %w", err)
	}
	a.VaultFS = vaultFS
	a.VaultRoot = vaultFS.Root()

	// 初始化修改跟踪器
	a.Tracker = tracker.New(vaultFS.NoteExt())

	// 初始化 DAO（使用依赖注入）
	a.Dao = dao.New(db, logger)

	// 初始化 Repository 层
	a.SettingRepo = dao.NewSettingRepository(a.Dao)
	a.LinkRunRepo = dao.NewLinkRunRepository(a.Dao)

	// 创建 ServiceConfig（从 AppConfig 提取 Service 层需要的配置）
	svcConfig := &service.ServiceConfig{
		Vault: service.VaultServiceConfig{
			Marker:          cfg.Vault.Marker,
			DailyNoteFolder: cfg.Vault.DailyNoteFolder,
		},
		App: service.AppServiceConfig{
			RunLogRetentionTime: cfg.App.RunLogRetentionTime,
		},
	}

	// 初始化 Service 层（依赖注入）
	a.SettingService = service.NewSettingService(a.SettingRepo, svcConfig)
	a.DailyNoteService = service.NewDailyNoteService(a.VaultFS, a.Tracker, a.SettingService, a.LinkRunRepo, svcConfig)

	logger.Info("App container initialized successfully",
		zap.String("vault", vaultFS.Root()),
		zap.String("noteExt", vaultFS.NoteExt()))

	return a, nil
}

// Shutdown 优雅关闭应用容器
// ctx 控制关闭的最长等待时间
func (a *App) Shutdown(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- a.Close()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}
