package domain

import "time"

// LinkRunTrigger 定义链接运行的触发方式
type LinkRunTrigger string

const (
	LinkRunTriggerFlush LinkRunTrigger = "flush"
	LinkRunTriggerRetro LinkRunTrigger = "retro"
	LinkRunTriggerCron  LinkRunTrigger = "cron"
)

// LinkRun 一次链接写入运行的记录
type LinkRun struct {
	ID int64
	// Trigger 触发方式 flush / retro / cron
	Trigger LinkRunTrigger
	// DatesProcessed 成功处理的日期数
	DatesProcessed int
	// DatesFailed 失败的日期数
	DatesFailed int
	// FilesLinked 写入的链接条数
	FilesLinked int
	// FailedDates 失败日期列表，逗号分隔
	FailedDates string
	// DurationMs 运行耗时（毫秒）
	DurationMs int64
	CreatedAt  time.Time
}

// IsClean 判断运行是否无失败日期
func (r *LinkRun) IsClean() bool {
	return r.DatesFailed == 0
}
