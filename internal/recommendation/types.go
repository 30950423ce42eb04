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
	"github.com/unilab/portal/internal/recommendation/internal/domain"
	"github.com/unilab/portal/internal/recommendation/internal/service"
	"github.com/unilab/portal/internal/recommendation/internal/web"
)

type Handler = web.Handler

type RecommendationProfile = domain.RecommendationProfile

type Export = domain.Export

type Caller = domain.Caller

type Service = service.ExportService

type Module struct {
	Hdl *Handler
	Svc Service
}
