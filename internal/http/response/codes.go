package response

// 业务状态码（HTTP 状态始终为 200）
const (
	CodeOK              = 0
	CodeBadRequest      = 400 // 参数或取值不合法
	CodeUnauthorized    = 401 // 未登录、口令错误或会话失效
	CodeNotFound        = 404 // 维修单、媒体或客户不存在
	CodeTooManyRequests = 429 // 触发限流
	CodeInternal        = 500 // 存储或外部依赖失败
)

// AppError 携带业务码的错误，Err 为原始错误，仅用于日志
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapError 包装错误
func WrapError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
