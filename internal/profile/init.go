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

package profile

import (
	"net/http"

	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/unilab/portal/internal/profile/internal/repository/dao"
	"github.com/unilab/portal/internal/profile/internal/service"
)

func initDAO(db *egorm.Component) dao.ProfileDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMProfileDAO(db)
}

// initFallbackSink 备用 REST 端点的配置从 config 里来
func initFallbackSink() service.RemoteSink {
	type Config struct {
		URL   string `yaml:"url"`
		Token string `yaml:"token"`
	}
	var cfg Config
	err := econf.UnmarshalKey("profile.fallback", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewFallbackSink(http.DefaultClient, cfg.URL, cfg.Token)
}
