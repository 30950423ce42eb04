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

package recommendation

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/unilab/portal/internal/recommendation/internal/service"
	"github.com/unilab/portal/internal/recommendation/internal/web"
)

func initHandler(svc service.ExportService) *web.Handler {
	type Config struct {
		APIKey   string `yaml:"apiKey"`
		TestMode bool   `yaml:"testMode"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("recommendation", &cfg); err != nil {
		panic(err)
	}
	return web.NewHandler(svc, cfg.APIKey, cfg.TestMode)
}
