package errs

var (
	SystemError = ErrorCode{Code: 502001, Msg: "系统错误"}
	InvalidLink = ErrorCode{Code: 402001, Msg: "个人链接格式不正确"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
