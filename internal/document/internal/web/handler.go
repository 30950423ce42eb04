// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/unilab/portal/internal/document/internal/domain"
	"github.com/unilab/portal/internal/document/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.UploadService
	logger *elog.Component
}

func NewHandler(svc service.UploadService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/document")
	g.POST("/resume", ginx.S(h.Upload))
	g.GET("/resume/url", ginx.S(h.ViewURL))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
}

func (h *Handler) Upload(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return systemErrorResult, err
	}
	f, err := fh.Open()
	if err != nil {
		return systemErrorResult, err
	}
	defer f.Close()

	key, err := h.svc.Upload(ctx, sess.Claims().Uid, domain.File{
		Name:        fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        f,
	})
	switch {
	case errors.Is(err, service.ErrFileTooLarge):
		return fileTooLargeResult, nil
	case errors.Is(err, service.ErrInvalidFileType):
		return invalidFileTypeResult, nil
	case errors.Is(err, service.ErrTransferFailed):
		return transferFailedResult, err
	case errors.Is(err, service.ErrNotConfirmed):
		return confirmFailedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: UploadResp{Key: key},
	}, nil
}

func (h *Handler) ViewURL(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	key := ctx.Query("key").StringOrDefault("")
	if key == "" {
		return systemErrorResult, errors.New("缺少对象键")
	}
	view, err := h.svc.ViewURL(ctx, sess.Claims().Uid, key)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ViewResp{
			URL:  view.URL,
			Mode: string(view.Mode),
		},
	}, nil
}
