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

package service

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/unilab/portal/internal/document/internal/domain"
	"github.com/unilab/portal/internal/pkg/httpx"
	"github.com/unilab/portal/internal/profile"
)

type NegotiateReq struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}

// RecordUpdate 备用的记录直写端点的载荷
// 带上完整档案快照，确认端点不可用时没落库的编辑不会丢
type RecordUpdate struct {
	ResumeFileName string                `json:"resumeFileName"`
	ResumeURL      string                `json:"resumeUrl"`
	ResumeData     string                `json:"resumeData"`
	Resume         profile.ResumeDetails `json:"resume"`
	Education      []profile.Education   `json:"education"`
	Experience     []profile.Experience  `json:"experience"`
	Skills         []string              `json:"skills"`
	Projects       []profile.Project     `json:"projects"`
}

// EndpointClient 上传协议依赖的几个服务端端点
//
//go:generate mockgen -source=./endpoints.go -package=svcmocks -destination=mocks/endpoints.mock.go EndpointClient
type EndpointClient interface {
	// Negotiate 要一个短时效的直传 URL
	Negotiate(ctx context.Context, req NegotiateReq) (domain.UploadGrant, error)
	// Transfer 原始字节直传对象存储，绕开应用的常规 API 路径
	Transfer(ctx context.Context, uploadURL, contentType string, body io.Reader) error
	// Confirm 上传确认
	Confirm(ctx context.Context, key string) error
	// UpdateRecord 确认端点不可用时的备用记录直写
	UpdateRecord(ctx context.Context, uid int64, upd RecordUpdate) error
	// ViewURL 要一个短时效的读 URL，每次现取，过期的东西不缓存
	ViewURL(ctx context.Context, key string) (string, error)
}

type httpEndpointClient struct {
	client httpx.HTTPClient
	// 协商端点，confirm 挂在它下面
	uploadURL string
	updateURL string
	viewURL   string
	token     string
}

func NewHTTPEndpointClient(client httpx.HTTPClient, uploadURL, updateURL, viewURL, token string) EndpointClient {
	return &httpEndpointClient{
		client:    client,
		uploadURL: uploadURL,
		updateURL: updateURL,
		viewURL:   viewURL,
		token:     token,
	}
}

func (c *httpEndpointClient) Negotiate(ctx context.Context, req NegotiateReq) (domain.UploadGrant, error) {
	// 两种响应字段名都兼容
	var resp struct {
		PresignedURL string `json:"presignedUrl"`
		UploadURL    string `json:"uploadUrl"`
		FileKey      string `json:"fileKey"`
	}
	err := httpx.PostJSON(ctx, c.client, c.uploadURL, c.token, req, &resp)
	if err != nil {
		return domain.UploadGrant{}, err
	}
	uploadURL := resp.UploadURL
	if uploadURL == "" {
		uploadURL = resp.PresignedURL
	}
	if uploadURL == "" || resp.FileKey == "" {
		return domain.UploadGrant{}, fmt.Errorf("%w: 协商响应缺少直传地址或对象键", httpx.ErrServerError)
	}
	return domain.UploadGrant{
		UploadURL: uploadURL,
		Key:       resp.FileKey,
	}, nil
}

func (c *httpEndpointClient) Transfer(ctx context.Context, uploadURL, contentType string, body io.Reader) error {
	return httpx.PutRaw(ctx, c.client, uploadURL, contentType, body)
}

func (c *httpEndpointClient) Confirm(ctx context.Context, key string) error {
	body := map[string]any{"fileKey": key}
	return httpx.PostJSON(ctx, c.client, c.uploadURL+"/confirm", c.token, body, nil)
}

func (c *httpEndpointClient) UpdateRecord(ctx context.Context, uid int64, upd RecordUpdate) error {
	return httpx.PostJSON(ctx, c.client, c.updateURL, c.token, upd, nil)
}

func (c *httpEndpointClient) ViewURL(ctx context.Context, key string) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	err := httpx.GetJSON(ctx, c.client,
		c.viewURL+"?key="+url.QueryEscape(key), c.token, &resp)
	if err != nil {
		return "", err
	}
	return resp.URL, nil
}
