package errs

var (
	SystemError     = ErrorCode{Code: 503001, Msg: "系统错误"}
	FileTooLarge    = ErrorCode{Code: 403001, Msg: "文件超过 10MB 上限"}
	InvalidFileType = ErrorCode{Code: 403002, Msg: "只支持 pdf/doc/docx"}
	TransferFailed  = ErrorCode{Code: 503002, Msg: "文件上传失败"}
	ConfirmFailed   = ErrorCode{Code: 503003, Msg: "上传确认失败"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
