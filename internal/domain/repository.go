package domain

import (
	"context"
	"time"
)

// SettingRepository 设置仓储接口
type SettingRepository interface {
	// Get 获取当前设置，不存在时返回带默认值的设置
	Get(ctx context.Context) (*Setting, error)

	// Save 整体覆盖保存设置
	Save(ctx context.Context, setting *Setting) (*Setting, error)
}

// LinkRunRepository 链接运行记录仓储接口
type LinkRunRepository interface {
	// Create 写入一条运行记录
	Create(ctx context.Context, run *LinkRun) (*LinkRun, error)

	// List 分页获取运行记录，按创建时间倒序
	List(ctx context.Context, page, pageSize int) ([]*LinkRun, error)

	// Count 获取运行记录总数
	Count(ctx context.Context) (int64, error)

	// DeleteBefore 删除给定时间之前的运行记录，返回删除行数
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
