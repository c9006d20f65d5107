package model

import (
	"github.com/haierkeys/daily-note-link-service/pkg/timex"
)

// LinkRun 链接运行记录表
type LinkRun struct {
	ID             int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Trigger        string     `gorm:"column:trigger;type:varchar(16);index" json:"trigger"`
	DatesProcessed int        `gorm:"column:dates_processed" json:"datesProcessed"`
	DatesFailed    int        `gorm:"column:dates_failed" json:"datesFailed"`
	FilesLinked    int        `gorm:"column:files_linked" json:"filesLinked"`
	FailedDates    string     `gorm:"column:failed_dates;type:text" json:"failedDates"`
	DurationMs     int64      `gorm:"column:duration_ms" json:"durationMs"`
	CreatedAt      timex.Time `gorm:"column:created_at;index" json:"createdAt"`
}

// TableName 返回表名
func (*LinkRun) TableName() string {
	return "link_run"
}
