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
	"encoding/json"

	"github.com/unilab/portal/internal/pkg/httpx"
	"github.com/unilab/portal/internal/profile/internal/domain"
	"github.com/unilab/portal/internal/profile/internal/repository"
)

// RemoteSink 远端落库策略，按固定优先级排成一列依次尝试
// 有一个成功就算成功，避免到处嵌套 try/catch 式的兜底
//
//go:generate mockgen -source=./sink.go -package=svcmocks -destination=mocks/sink.mock.go RemoteSink
type RemoteSink interface {
	Name() string
	Save(ctx context.Context, uid int64, details domain.ResumeDetails) error
}

// primarySink 主存储，走 GORM
type primarySink struct {
	repo repository.ProfileRepository
}

func NewPrimarySink(repo repository.ProfileRepository) RemoteSink {
	return &primarySink{repo: repo}
}

func (s *primarySink) Name() string {
	return "primary"
}

func (s *primarySink) Save(ctx context.Context, uid int64, details domain.ResumeDetails) error {
	return s.repo.SaveResume(ctx, uid, details)
}

// fallbackSink 备用的 REST 端点，主存储不可用时顶上
// 载荷和主存储保持一致：结构化和旧版两种形态一起发
type fallbackSink struct {
	client httpx.HTTPClient
	url    string
	token  string
}

func NewFallbackSink(client httpx.HTTPClient, url, token string) RemoteSink {
	return &fallbackSink{
		client: client,
		url:    url,
		token:  token,
	}
}

func (s *fallbackSink) Name() string {
	return "fallback"
}

func (s *fallbackSink) Save(ctx context.Context, uid int64, details domain.ResumeDetails) error {
	data, err := json.Marshal(details)
	if err != nil {
		return err
	}
	body := map[string]any{
		"uid":        uid,
		"resume":     details,
		"resumeData": string(data),
		"education":  details.Education,
		"experience": details.Experience,
		"skills":     details.Skills,
		"projects":   details.Projects,
	}
	return httpx.PostJSON(ctx, s.client, s.url, s.token, body, nil)
}
