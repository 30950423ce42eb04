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

// Package httpx 是调用内部 REST 端点的小工具
// 带 Bearer 鉴权的 JSON 请求，按状态码分类错误
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// HTTPClient HTTP 客户端接口，用于执行 HTTP 请求
// 便于测试时 mock
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var (
	// ErrClientError 客户端错误（4xx），不应重试
	ErrClientError = errors.New("客户端错误")
	// ErrServerError 服务端错误（5xx），可以重试
	ErrServerError = errors.New("服务端错误")
	// ErrNetworkError 网络错误，可以重试
	ErrNetworkError = errors.New("网络错误")
)

// PostJSON 发 JSON 请求体，out 不为 nil 时解析响应
func PostJSON(ctx context.Context, client HTTPClient, url, token string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: 序列化请求失败: %v", ErrClientError, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: 创建请求失败: %v", ErrClientError, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return do(client, req, out)
}

// GetJSON 带 Bearer 的 GET
func GetJSON(ctx context.Context, client HTTPClient, url, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: 创建请求失败: %v", ErrClientError, err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return do(client, req, out)
}

// PutRaw 原始字节直传，给对象存储的预签名 URL 用，不走 JSON 包装
func PutRaw(ctx context.Context, client HTTPClient, url, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return fmt.Errorf("%w: 创建请求失败: %v", ErrClientError, err)
	}
	req.Header.Set("Content-Type", contentType)
	return do(client, req, nil)
}

func do(client HTTPClient, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: 请求失败: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// 每次使用局部变量，避免并发问题
		var errorDetail struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errorDetail)
		detail := errorDetail.Error
		if detail == "" {
			detail = errorDetail.Message
		}
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			if detail != "" {
				return fmt.Errorf("%w: %s", ErrClientError, detail)
			}
			return fmt.Errorf("%w: HTTP状态码=%d", ErrClientError, resp.StatusCode)
		}
		if detail != "" {
			return fmt.Errorf("%w: %s", ErrServerError, detail)
		}
		return fmt.Errorf("%w: HTTP状态码=%d", ErrServerError, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: 解析响应失败: %v", ErrServerError, err)
	}
	return nil
}
