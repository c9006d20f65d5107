package domain

import "time"

// DefaultDailyNoteFolder 日记目录为空时使用的回退目录名
const DefaultDailyNoteFolder = "Daily Notes"

// Setting 设置领域模型
// 单行存储，每次保存整体覆盖
type Setting struct {
	ID              int64
	DailyNoteFolder string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ResolvedDailyNoteFolder 返回生效的日记目录
// 未配置时回退到默认目录名
func (s *Setting) ResolvedDailyNoteFolder() string {
	if s == nil || s.DailyNoteFolder == "" {
		return DefaultDailyNoteFolder
	}
	return s.DailyNoteFolder
}
