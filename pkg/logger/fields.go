package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldAction 操作类型字段
	FieldAction = "action"

	// FieldPath 文件路径字段
	FieldPath = "path"

	// FieldNote 笔记路径字段
	FieldNote = "note"

	// FieldDate 日记日期字段
	FieldDate = "date"

	// FieldFolder 日记目录字段
	FieldFolder = "folder"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldError 错误信息字段
	FieldError = "error"

	// FieldTrigger 运行触发方式字段
	FieldTrigger = "trigger"

	// FieldCount 数量字段
	FieldCount = "count"
)
