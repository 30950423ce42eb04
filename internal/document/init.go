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

package document

import (
	"net/http"

	"github.com/gotomicro/ego/core/econf"
	"github.com/unilab/portal/internal/document/internal/repository/cache"
	"github.com/unilab/portal/internal/document/internal/service"
	"github.com/unilab/portal/internal/profile"
)

type endpointsConfig struct {
	// UploadURL 协商端点，确认端点挂在它的 /confirm 子路径
	UploadURL string `yaml:"uploadUrl"`
	// UpdateURL 备用的记录直写端点
	UpdateURL string `yaml:"updateUrl"`
	// ViewURL 短时效读 URL 端点
	ViewURL string `yaml:"viewUrl"`
	// ObjectBaseURL 对象的公开访问前缀
	ObjectBaseURL string `yaml:"objectBaseUrl"`
	Token         string `yaml:"token"`
}

func loadEndpointsConfig() endpointsConfig {
	var cfg endpointsConfig
	err := econf.UnmarshalKey("document", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initEndpointClient() service.EndpointClient {
	cfg := loadEndpointsConfig()
	return service.NewHTTPEndpointClient(http.DefaultClient,
		cfg.UploadURL, cfg.UpdateURL, cfg.ViewURL, cfg.Token)
}

func initUploadService(client service.EndpointClient,
	kc cache.KeyCache, profileModule *profile.Module) service.UploadService {
	cfg := loadEndpointsConfig()
	return service.NewUploadService(client, kc, profileModule.Svc, cfg.ObjectBaseURL)
}
