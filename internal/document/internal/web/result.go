package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/unilab/portal/internal/document/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	fileTooLargeResult = ginx.Result{
		Code: errs.FileTooLarge.Code,
		Msg:  errs.FileTooLarge.Msg,
	}
	invalidFileTypeResult = ginx.Result{
		Code: errs.InvalidFileType.Code,
		Msg:  errs.InvalidFileType.Msg,
	}
	transferFailedResult = ginx.Result{
		Code: errs.TransferFailed.Code,
		Msg:  errs.TransferFailed.Msg,
	}
	confirmFailedResult = ginx.Result{
		Code: errs.ConfirmFailed.Code,
		Msg:  errs.ConfirmFailed.Msg,
	}
)
