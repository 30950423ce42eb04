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
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCheckAPIKey(t *testing.T) {
	testCases := []struct {
		name        string
		key         string
		testMode    bool
		reqKey      string
		wantChannel string
	}{
		{
			name:        "测试模式直接标记",
			testMode:    true,
			wantChannel: ChannelTestMode,
		},
		{
			name:        "密钥匹配_标记API通道",
			key:         "secret",
			reqKey:      "secret",
			wantChannel: ChannelAPIKey,
		},
		{
			name:   "密钥不匹配_不标记",
			key:    "secret",
			reqKey: "wrong",
		},
		{
			name:   "通道未配置_忽略密钥头",
			reqKey: "anything",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/recommendation/export", nil)
			if tc.reqKey != "" {
				c.Request.Header.Set(apiKeyHeader, tc.reqKey)
			}
			NewCheckAPIKeyMiddlewareBuilder(tc.key, tc.testMode).Build()(c)
			assert.Equal(t, tc.wantChannel, c.GetString(ChannelCtxKey))
			// 标记器从不拦截,拦截是用户组校验的事
			assert.False(t, c.IsAborted())
		})
	}
}
