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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"github.com/unilab/portal/internal/profile"
	"github.com/unilab/portal/internal/recommendation/internal/domain"
)

//go:generate mockgen -source=./export.go -destination=../../mocks/recommendation.mock.go -package=recommendationmocks -typed ExportService

var (
	ErrSourceUnavailable = errors.New("档案数据源不可用")
)

// RequiredGroups 允许导出的用户组,有其一即可
var RequiredGroups = []string{"Admin", "Professor", "LabAssistant"}

const (
	apiVersion = "1.0"
	// studentRole 只有带这个角色的档案才进导出
	studentRole = "Student"
	// filterApplied 元数据里固定的过滤器标记
	filterApplied = "students_only"
)

// PermissionError 带上调用方和要求的组,Handler 原样透出
type PermissionError struct {
	YourRoles     []string
	RequiredRoles []string
}

func (e *PermissionError) Error() string {
	return "没有导出推荐档案的权限"
}

type ExportOptions struct {
	// IncludeIncomplete 为 true 时连未完成的学生档案一起导
	IncludeIncomplete bool
}

type ExportService interface {
	// Export 先鉴权后取数,鉴权不过一行数据都不会读
	Export(ctx context.Context, caller domain.Caller, opts ExportOptions) (domain.Export, error)
}

type exportService struct {
	profileSvc profile.Service
	logger     *elog.Component
	now        func() time.Time
}

func NewExportService(profileSvc profile.Service) ExportService {
	return &exportService{
		profileSvc: profileSvc,
		logger:     elog.DefaultLogger,
		now:        time.Now,
	}
}

func (s *exportService) Export(ctx context.Context,
	caller domain.Caller, opts ExportOptions) (domain.Export, error) {
	if err := authorize(caller); err != nil {
		return domain.Export{}, err
	}
	exportID := uuid.NewString()
	recs, err := s.profileSvc.AllRecords(ctx)
	if err != nil {
		s.logger.Error("读取档案数据失败",
			elog.String("exportId", exportID),
			elog.FieldErr(err))
		return domain.Export{}, errors.Wrap(ErrSourceUnavailable, err.Error())
	}
	now := s.now()
	profiles := make([]domain.RecommendationProfile, 0, len(recs))
	for _, rec := range recs {
		if !isStudent(rec) {
			continue
		}
		if !opts.IncludeIncomplete && !rec.ProfileComplete {
			continue
		}
		profiles = append(profiles, s.toProfile(rec, now))
	}
	s.logger.Info("导出推荐档案",
		elog.String("exportId", exportID),
		elog.String("requestedBy", caller.Requester),
		elog.Int("count", len(profiles)))
	return domain.Export{
		Profiles: profiles,
		Count:    len(profiles),
		Metadata: domain.Metadata{
			GeneratedAt:        now.UTC().Format(time.RFC3339),
			FilterApplied:      filterApplied,
			IncludedIncomplete: opts.IncludeIncomplete,
			RequestedBy:        caller.Requester,
			APIVersion:         apiVersion,
		},
	}, nil
}

// authorize 三条通道:测试模式、API Key、会话用户组
func authorize(caller domain.Caller) error {
	if caller.TestMode || caller.APIKey {
		return nil
	}
	if caller.Authenticated {
		for _, role := range caller.Roles {
			if slice.Contains(RequiredGroups, role) {
				return nil
			}
		}
	}
	return &PermissionError{
		YourRoles:     caller.Roles,
		RequiredRoles: RequiredGroups,
	}
}

func (s *exportService) toProfile(rec profile.UserRecord, now time.Time) domain.RecommendationProfile {
	// 结构化字段优先,legacy JSON 兜底,和档案读取走同一条归一化路径
	details := profile.ParseStored(rec.Resume, rec.ResumeData)
	years := rec.YearsOfExperience
	if !rec.HasYears {
		years = profile.TotalYearsOfExperience(details.Experience, now)
	}
	// 主存储的技能列是独立维护的,有值就用它,没有才从档案里取
	skills := rec.Skills
	if len(skills) == 0 {
		skills = details.Skills
	}
	var lastUpdated string
	if rec.ResumeLastUpdated > 0 {
		lastUpdated = time.UnixMilli(rec.ResumeLastUpdated).UTC().Format(time.RFC3339)
	}
	return domain.RecommendationProfile{
		UserID:            rec.Uid,
		Email:             rec.Email,
		Education:         details.Education,
		Experience:        details.Experience,
		Skills:            skills,
		Seniority:         rec.Seniority,
		YearsOfExperience: years,
		CareerGoals:       rec.CareerGoals,
		ResumeDescription: rec.ResumeDescription,
		ProfileComplete:   rec.ProfileComplete,
		LastUpdated:       lastUpdated,
		LabIds:            rec.LabIds,
	}
}

func isStudent(rec profile.UserRecord) bool {
	return slice.Contains(rec.Roles, studentRole)
}
