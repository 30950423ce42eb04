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
	"regexp"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/unilab/portal/internal/profile/internal/service"
)

var _ ginx.Handler = &Handler{}

// 个人链接只在这里做域名形状校验，核心逻辑不管这事
var (
	linkedinPattern = regexp.MustCompile(`^https?://([a-z0-9-]+\.)?linkedin\.com/`)
	websitePattern  = regexp.MustCompile(`^https?://`)
)

type Handler struct {
	svc    service.ProfileService
	logger *elog.Component
}

func NewHandler(svc service.ProfileService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/profile")
	g.GET("/resume", ginx.S(h.Resume))
	g.POST("/resume", ginx.BS[SaveResumeReq](h.SaveResume))
	g.POST("/resume/sync", ginx.S(h.SyncResume))
	g.GET("/completeness", ginx.S(h.Completeness))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
}

func (h *Handler) Resume(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	details := h.svc.Load(ctx, sess.Claims().Uid)
	return ginx.Result{
		Data: newResumeVO(details),
	}, nil
}

func (h *Handler) SaveResume(ctx *ginx.Context, req SaveResumeReq, sess session.Session) (ginx.Result, error) {
	links := req.Resume.PersonalLinks
	if links.LinkedIn != "" && !linkedinPattern.MatchString(links.LinkedIn) {
		return invalidLinkResult, nil
	}
	if links.Website != "" && !websitePattern.MatchString(links.Website) {
		return invalidLinkResult, nil
	}
	ok := h.svc.Save(ctx, sess.Claims().Uid, req.Resume.toDomain())
	if !ok {
		return systemErrorResult, errors.New("档案保存失败")
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) SyncResume(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.Sync(ctx, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, service.ErrNothingToSync) {
			return ginx.Result{Msg: "OK"}, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Completeness(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return ginx.Result{
		Data: h.svc.Completeness(ctx, sess.Claims().Uid),
	}, nil
}
