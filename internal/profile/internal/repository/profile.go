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

package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/unilab/portal/internal/profile/internal/domain"
	"github.com/unilab/portal/internal/profile/internal/repository/cache"
	"github.com/unilab/portal/internal/profile/internal/repository/dao"
)

// ErrRecordNotFound 底层没有这条用户记录
var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./profile.go -package=repomocks -destination=mocks/profile.mock.go ProfileRepository
type ProfileRepository interface {
	// FindRecord 读主存储里的完整用户记录
	FindRecord(ctx context.Context, uid int64) (domain.UserRecord, error)
	// SaveResume 把规范档案写进主存储，结构化和旧版两种形态一起写
	SaveResume(ctx context.Context, uid int64, details domain.ResumeDetails) error
	// UpdateFilePointer 只更新简历文件指针
	UpdateFilePointer(ctx context.Context, uid int64, fileName, fileURL string) error
	// AllRecords 导出用的全量读取
	AllRecords(ctx context.Context) ([]domain.UserRecord, error)

	// CacheResume 本地缓存层，保存链路里最先写、读取链路里最后读
	CacheResume(ctx context.Context, uid int64, details domain.ResumeDetails) error
	CachedResume(ctx context.Context, uid int64) (domain.ResumeDetails, error)
}

type CachedProfileRepository struct {
	dao   dao.ProfileDAO
	cache cache.ResumeCache
}

func NewCachedProfileRepository(d dao.ProfileDAO, c cache.ResumeCache) ProfileRepository {
	return &CachedProfileRepository{
		dao:   d,
		cache: c,
	}
}

func (r *CachedProfileRepository) FindRecord(ctx context.Context, uid int64) (domain.UserRecord, error) {
	p, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return domain.UserRecord{}, err
	}
	return r.entityToDomain(p), nil
}

func (r *CachedProfileRepository) SaveResume(ctx context.Context, uid int64, details domain.ResumeDetails) error {
	data, err := json.Marshal(details)
	if err != nil {
		return err
	}
	return r.dao.UpsertResume(ctx, dao.UserProfile{
		Uid: uid,
		// 兼容窗口期，两种形态同时写
		Resume:            string(data),
		ResumeData:        string(data),
		ResumeLastUpdated: time.Now().UnixMilli(),
	})
}

func (r *CachedProfileRepository) UpdateFilePointer(ctx context.Context, uid int64, fileName, fileURL string) error {
	return r.dao.UpdateFilePointer(ctx, uid, fileName, fileURL)
}

func (r *CachedProfileRepository) AllRecords(ctx context.Context) ([]domain.UserRecord, error) {
	ps, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.UserProfile) domain.UserRecord {
		return r.entityToDomain(src)
	}), nil
}

func (r *CachedProfileRepository) CacheResume(ctx context.Context, uid int64, details domain.ResumeDetails) error {
	return r.cache.Set(ctx, uid, details)
}

func (r *CachedProfileRepository) CachedResume(ctx context.Context, uid int64) (domain.ResumeDetails, error) {
	return r.cache.Get(ctx, uid)
}

func (r *CachedProfileRepository) entityToDomain(p dao.UserProfile) domain.UserRecord {
	return domain.UserRecord{
		Uid:               p.Uid,
		Email:             p.Email,
		Roles:             jsonToStrings(p.Roles),
		Resume:            p.Resume,
		ResumeData:        p.ResumeData,
		ResumeFileName:    p.ResumeFileName,
		ResumeURL:         p.ResumeUrl,
		ResumeLastUpdated: p.ResumeLastUpdated,
		Skills:            jsonToStrings(p.Skills),
		ProfileComplete:   p.ProfileComplete,
		Seniority:         p.Seniority,
		YearsOfExperience: p.YearsOfExperience.Float64,
		HasYears:          p.YearsOfExperience.Valid,
		CareerGoals:       p.CareerGoals,
		ResumeDescription: p.ResumeDescription,
		LabIds:            jsonToStrings(p.LabIds),
	}
}

// jsonToStrings 列里存的是 JSON 数组，解不出来当空列表
func jsonToStrings(data string) []string {
	if data == "" {
		return nil
	}
	var res []string
	if err := json.Unmarshal([]byte(data), &res); err != nil {
		return nil
	}
	return res
}
