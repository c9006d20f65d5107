// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import "github.com/haierkeys/daily-note-link-service/pkg/timex"

// SettingUpdateRequest 修改配置参数
type SettingUpdateRequest struct {
	DailyNoteFolder string `json:"dailyNoteFolder" form:"dailyNoteFolder"`
}

// SettingDTO 配置数据传输对象
type SettingDTO struct {
	DailyNoteFolder string     `json:"dailyNoteFolder" form:"dailyNoteFolder"`
	UpdatedAt       timex.Time `json:"updatedAt" form:"updatedAt"`
}
