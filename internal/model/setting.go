package model

import (
	"github.com/haierkeys/daily-note-link-service/pkg/timex"
)

// Setting 设置表，单行存储
type Setting struct {
	ID              int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	DailyNoteFolder string     `gorm:"column:daily_note_folder;type:varchar(255);default:''" json:"dailyNoteFolder"`
	CreatedAt       timex.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       timex.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName 返回表名
func (*Setting) TableName() string {
	return "setting"
}
