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
	"github.com/gin-gonic/gin"
)

const (
	// ChannelCtxKey 标记请求已通过哪条可信通道
	ChannelCtxKey   = "_caller-channel"
	ChannelTestMode = "test-mode"
	ChannelAPIKey   = "api-key"

	apiKeyHeader = "X-API-Key"
)

// CheckAPIKeyMiddlewareBuilder 测试模式和服务间共享密钥两条可信通道
// 只做标记不拦截，放行与否由后面的用户组校验统一决定
type CheckAPIKeyMiddlewareBuilder struct {
	key      string
	testMode bool
}

func NewCheckAPIKeyMiddlewareBuilder(key string, testMode bool) *CheckAPIKeyMiddlewareBuilder {
	return &CheckAPIKeyMiddlewareBuilder{
		key:      key,
		testMode: testMode,
	}
}

func (c *CheckAPIKeyMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if c.testMode {
			ctx.Set(ChannelCtxKey, ChannelTestMode)
			return
		}
		// key 为空表示该通道关闭
		if c.key != "" && ctx.GetHeader(apiKeyHeader) == c.key {
			ctx.Set(ChannelCtxKey, ChannelAPIKey)
		}
	}
}
