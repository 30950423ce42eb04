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

package middleware

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	// GroupsCtxKey 校验通过后放进 gin 上下文的用户组列表
	GroupsCtxKey = "_caller-groups"
	// UidCtxKey 校验通过后的用户 uid
	UidCtxKey = "_caller-uid"

	groupsClaim = "groups"
)

// CheckGroupMiddlewareBuilder 会话用户组校验，要求至少命中一个指定的组
// 失败返回 403，带上调用方实际的组和要求的组
type CheckGroupMiddlewareBuilder struct {
	groups []string
	logger *elog.Component
	sp     session.Provider
}

func NewCheckGroupMiddlewareBuilder(groups []string) *CheckGroupMiddlewareBuilder {
	return &CheckGroupMiddlewareBuilder{
		groups: groups,
		logger: elog.DefaultLogger,
	}
}

func (c *CheckGroupMiddlewareBuilder) Build() gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		// 可信通道已经标记过，无须校验会话
		if ctx.GetString(ChannelCtxKey) != "" {
			return
		}
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			c.forbid(ctx, nil)
			return
		}
		claims := sess.Claims()
		var roles []string
		if raw := claims.Get(groupsClaim).StringOrDefault(""); raw != "" {
			roles = strings.Split(raw, ",")
		}
		for _, role := range roles {
			if slice.Contains(c.groups, role) {
				ctx.Set(GroupsCtxKey, roles)
				ctx.Set(UidCtxKey, claims.Uid)
				return
			}
		}
		c.logger.Debug("用户组不满足要求", elog.Int64("uid", claims.Uid))
		c.forbid(ctx, roles)
	}
}

func (c *CheckGroupMiddlewareBuilder) forbid(ctx *gin.Context, roles []string) {
	if roles == nil {
		roles = []string{}
	}
	ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"error":         "没有访问权限",
		"yourRoles":     roles,
		"requiredRoles": c.groups,
	})
}
