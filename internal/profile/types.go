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
	"github.com/unilab/portal/internal/profile/internal/domain"
	"github.com/unilab/portal/internal/profile/internal/service"
	"github.com/unilab/portal/internal/profile/internal/web"
)

// Handler 暴露出去给 ioc 使用
type Handler = web.Handler

type ResumeDetails = domain.ResumeDetails
type Education = domain.Education
type Experience = domain.Experience
type Project = domain.Project
type PersonalLinks = domain.PersonalLinks
type UserRecord = domain.UserRecord
type Completeness = domain.Completeness

// Service 方便其它模块（文档上传、推荐导出）复用
type Service = service.ProfileService

// 归一化和推导逻辑同样开放给其它模块
var (
	ParseStored            = domain.ParseStored
	DefaultResumeDetails   = domain.DefaultResumeDetails
	TotalYearsOfExperience = domain.TotalYearsOfExperience
)

type Module struct {
	Hdl *Handler
	Svc Service
}
