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
	"fmt"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
	"github.com/unilab/portal/internal/pkg/middleware"
	"github.com/unilab/portal/internal/recommendation/internal/domain"
	"github.com/unilab/portal/internal/recommendation/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.ExportService
	// apiKey 服务间调用的共享密钥,为空表示关闭该通道
	apiKey string
	// testMode 测试环境开关,跳过鉴权
	testMode bool
	logger   *elog.Component
}

func NewHandler(svc service.ExportService, apiKey string, testMode bool) *Handler {
	return &Handler{
		svc:      svc,
		apiKey:   apiKey,
		testMode: testMode,
		logger:   elog.DefaultLogger,
	}
}

// PublicRoutes 鉴权由两个中间件完成:可信通道标记器先跑,
// 用户组校验兜底,所以不走全局的登录中间件
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/recommendation")
	g.GET("/export",
		middleware.NewCheckAPIKeyMiddlewareBuilder(h.apiKey, h.testMode).Build(),
		middleware.NewCheckGroupMiddlewareBuilder(service.RequiredGroups).Build(),
		h.Export)
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
}

func (h *Handler) Export(ctx *gin.Context) {
	caller := h.resolveCaller(ctx)
	opts := service.ExportOptions{
		IncludeIncomplete: ctx.Query("includeIncomplete") == "true",
	}
	export, err := h.svc.Export(ctx.Request.Context(), caller, opts)
	if err != nil {
		// 服务层的鉴权是兜底,中间件被绕开时仍然 403
		var perm *service.PermissionError
		if errors.As(err, &perm) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":         "没有导出推荐档案的权限",
				"yourRoles":     rolesOrEmpty(perm.YourRoles),
				"requiredRoles": perm.RequiredRoles,
			})
			return
		}
		h.logger.Error("导出推荐档案失败", elog.FieldErr(err))
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "导出失败",
			"message": err.Error(),
		})
		return
	}
	if ctx.Query("format") == "csv" {
		fileName := fmt.Sprintf("recommendation_profiles_%s.csv", shortuuid.New())
		ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
		ctx.Data(http.StatusOK, "text/csv", []byte(service.EncodeCSV(export.Profiles)))
		return
	}
	ctx.JSON(http.StatusOK, export)
}

// resolveCaller 中间件已经做完通道判定,这里只把结果搬进领域对象
func (h *Handler) resolveCaller(ctx *gin.Context) domain.Caller {
	switch ctx.GetString(middleware.ChannelCtxKey) {
	case middleware.ChannelTestMode:
		return domain.Caller{TestMode: true, Requester: "test-mode"}
	case middleware.ChannelAPIKey:
		return domain.Caller{APIKey: true, Requester: "api-key"}
	}
	var roles []string
	if val, ok := ctx.Get(middleware.GroupsCtxKey); ok {
		roles, _ = val.([]string)
	}
	return domain.Caller{
		Authenticated: true,
		Roles:         roles,
		Requester:     fmt.Sprintf("uid:%d", ctx.GetInt64(middleware.UidCtxKey)),
	}
}

func rolesOrEmpty(roles []string) []string {
	if roles == nil {
		return []string{}
	}
	return roles
}
