package dto

import "github.com/haierkeys/daily-note-link-service/pkg/timex"

// TrackedDTO 当前待写入的笔记集合
type TrackedDTO struct {
	Count int      `json:"count" form:"count"`
	Paths []string `json:"paths" form:"paths"`
}

// FlushResultDTO 单次写入今日日记的结果
type FlushResultDTO struct {
	Date        string   `json:"date" form:"date"`
	DailyNote   string   `json:"dailyNote" form:"dailyNote"`
	FilesLinked int      `json:"filesLinked" form:"filesLinked"`
	Links       []string `json:"links" form:"links"`
}

// RetroResultDTO 回溯补写的汇总结果
type RetroResultDTO struct {
	DatesProcessed int      `json:"datesProcessed" form:"datesProcessed"`
	DatesFailed    int      `json:"datesFailed" form:"datesFailed"`
	FilesLinked    int      `json:"filesLinked" form:"filesLinked"`
	FailedDates    []string `json:"failedDates" form:"failedDates"`
}

// LinkRunListRequest 查询写入历史的分页参数
type LinkRunListRequest struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"pageSize" form:"pageSize"`
}

// LinkRunDTO 单条写入历史记录
type LinkRunDTO struct {
	ID             int64      `json:"id" form:"id"`
	Trigger        string     `json:"trigger" form:"trigger"`
	DatesProcessed int        `json:"datesProcessed" form:"datesProcessed"`
	DatesFailed    int        `json:"datesFailed" form:"datesFailed"`
	FilesLinked    int        `json:"filesLinked" form:"filesLinked"`
	FailedDates    string     `json:"failedDates" form:"failedDates"`
	DurationMs     int64      `json:"durationMs" form:"durationMs"`
	CreatedAt      timex.Time `json:"createdAt" form:"createdAt"`
}
