package code

// 通用成功码
var (
	Success       = NewSuss(200, lang{"Success", "成功"})
	SuccessUpdate = NewSuss(201, lang{"Update Success", "更新成功"})
)

// 通用错误码
var (
	ErrorServerInternal  = NewError(10000, lang{"Server Internal Error", "服务器内部错误"})
	ErrorInvalidParams   = NewError(10001, lang{"Invalid Params", "入参错误"})
	ErrorNotFoundAPI     = NewError(10002, lang{"Not Found API", "接口不存在"})
	ErrorTooManyRequests = NewError(10003, lang{"Too Many Requests", "请求过多"})
)

// 业务错误码
var (
	// ErrorVaultNotFound 笔记仓库目录不存在或不可访问
	ErrorVaultNotFound = NewError(20001, lang{"Vault Path Not Found", "笔记仓库目录不存在"})
	// ErrorDailyNoteResolve 日记解析或创建失败
	ErrorDailyNoteResolve = NewError(20002, lang{"Daily Note Resolve Failed", "日记定位或创建失败"})
	// ErrorDailyNoteWrite 日记链接写入失败
	ErrorDailyNoteWrite = NewError(20003, lang{"Daily Note Write Failed", "日记链接写入失败"})
	// ErrorRetroRunning 回溯任务已在运行
	ErrorRetroRunning = NewError(20004, lang{"Retroactive Linking Already Running", "回溯链接任务已在运行"})
	// ErrorSettingSave 设置保存失败
	ErrorSettingSave = NewError(20005, lang{"Setting Save Failed", "设置保存失败"})
)
