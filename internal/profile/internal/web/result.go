package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/unilab/portal/internal/profile/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidLinkResult = ginx.Result{
		Code: errs.InvalidLink.Code,
		Msg:  errs.InvalidLink.Msg,
	}
)
