package errcode

// 导出通知里的错误码：
// - 0：无错误
// - 4xxx：数据问题，重试无意义（例如导出期间简历已被删除）
// - 5xxx：系统错误，worker 已按重试策略放弃
const (
	OK              = 0
	ResourceMissing = 4004
	SystemError     = 5000
	RenderFailed    = 5001
	StorageFailed   = 5002
)
