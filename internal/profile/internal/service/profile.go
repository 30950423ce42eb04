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
	"errors"

	"github.com/gotomicro/ego/core/elog"
	"github.com/unilab/portal/internal/profile/internal/domain"
	"github.com/unilab/portal/internal/profile/internal/repository"
)

// ErrAllSinksFailed 本地缓存和所有远端层全都写失败才会出现
var ErrAllSinksFailed = errors.New("所有存储层写入失败")

// ErrNothingToSync 本地缓存里没有待同步的数据
var ErrNothingToSync = errors.New("本地缓存为空，无可同步数据")

//go:generate mockgen -source=./profile.go -package=profilemocks --destination=../../mocks/profile.mock.go -typed ProfileService
type ProfileService interface {
	// Load 读档案，层层兜底，从不向调用方返回错误
	Load(ctx context.Context, uid int64) domain.ResumeDetails
	// Save 保存档案，任意一层写成功就返回 true，
	// 后端临时不可用不能卡住用户编辑
	Save(ctx context.Context, uid int64, details domain.ResumeDetails) bool
	// Sync 把本地缓存的档案重放到所有远端层，幂等
	Sync(ctx context.Context, uid int64) error
	// Completeness 档案完整度评估
	Completeness(ctx context.Context, uid int64) domain.Completeness

	// Record 主存储里的完整用户记录，给文档上传和导出用
	Record(ctx context.Context, uid int64) (domain.UserRecord, error)
	AllRecords(ctx context.Context) ([]domain.UserRecord, error)
	// UpdateFilePointer 直写主存储的文件指针列
	UpdateFilePointer(ctx context.Context, uid int64, fileName, fileURL string) error
}

type profileService struct {
	repo repository.ProfileRepository
	// 远端层按优先级排列：主存储在前，REST 备用端点在后
	remotes []RemoteSink
	logger  *elog.Component
}

func NewProfileService(repo repository.ProfileRepository, fallback RemoteSink) ProfileService {
	return &profileService{
		repo:    repo,
		remotes: []RemoteSink{NewPrimarySink(repo), fallback},
		logger:  elog.DefaultLogger,
	}
}

func (s *profileService) Load(ctx context.Context, uid int64) domain.ResumeDetails {
	rec, err := s.repo.FindRecord(ctx, uid)
	if err == nil {
		if d, ok := s.parseRecord(uid, rec); ok {
			// 顺手回填本地缓存，失败不影响读取
			if cerr := s.repo.CacheResume(ctx, uid, d); cerr != nil {
				s.logger.Warn("回填本地缓存失败",
					elog.Int64("uid", uid), elog.FieldErr(cerr))
			}
			return d
		}
	} else if !errors.Is(err, repository.ErrRecordNotFound) {
		s.logger.Warn("主存储读取失败，回退本地缓存",
			elog.Int64("uid", uid), elog.FieldErr(err))
	}

	d, err := s.repo.CachedResume(ctx, uid)
	if err == nil {
		return domain.Canonical(d)
	}
	return domain.DefaultResumeDetails()
}

// parseRecord 结构化字段优先，其次旧版 JSON 串，解析失败只记日志
func (s *profileService) parseRecord(uid int64, rec domain.UserRecord) (domain.ResumeDetails, bool) {
	var raw any
	if rec.Resume != "" {
		if err := json.Unmarshal([]byte(rec.Resume), &raw); err == nil {
			return domain.Normalize(raw), true
		}
		s.logger.Warn("结构化 resume 字段损坏，尝试旧版 resumeData",
			elog.Int64("uid", uid))
	}
	if rec.ResumeData != "" {
		raw = nil
		if err := json.Unmarshal([]byte(rec.ResumeData), &raw); err == nil {
			return domain.Normalize(raw), true
		}
		s.logger.Warn("旧版 resumeData 解析失败，按缺失处理",
			elog.Int64("uid", uid))
	}
	return domain.ResumeDetails{}, false
}

func (s *profileService) Save(ctx context.Context, uid int64, details domain.ResumeDetails) bool {
	ok := false
	// 本地缓存最先写，后端全挂的时候这里就是用户编辑的保底
	if err := s.repo.CacheResume(ctx, uid, details); err != nil {
		s.logger.Warn("写本地缓存失败",
			elog.Int64("uid", uid), elog.FieldErr(err))
	} else {
		ok = true
	}
	if err := s.saveRemote(ctx, uid, details, true); err != nil {
		s.logger.Error("所有远端层写入失败，仅保留本地缓存",
			elog.Int64("uid", uid), elog.FieldErr(err))
	} else {
		ok = true
	}
	return ok
}

func (s *profileService) Sync(ctx context.Context, uid int64) error {
	d, err := s.repo.CachedResume(ctx, uid)
	if err != nil {
		return ErrNothingToSync
	}
	// 重放写到所有远端层，内容不变时重复调用收敛到同一个远端状态
	return s.saveRemote(ctx, uid, domain.Canonical(d), false)
}

// saveRemote 按优先级尝试远端层
// stopOnSuccess 为 true 是保存语义：主存储成功就不再打扰备用端点；
// 为 false 是同步语义：所有远端层都重放一遍
func (s *profileService) saveRemote(ctx context.Context, uid int64, details domain.ResumeDetails, stopOnSuccess bool) error {
	succeeded := false
	var lastErr error
	for _, sink := range s.remotes {
		err := sink.Save(ctx, uid, details)
		if err == nil {
			succeeded = true
			if stopOnSuccess {
				return nil
			}
			continue
		}
		lastErr = err
		s.logger.Warn("远端层写入失败",
			elog.String("sink", sink.Name()),
			elog.Int64("uid", uid), elog.FieldErr(err))
	}
	if succeeded {
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return ErrAllSinksFailed
}

func (s *profileService) Completeness(ctx context.Context, uid int64) domain.Completeness {
	uploaded := false
	if rec, err := s.repo.FindRecord(ctx, uid); err == nil {
		uploaded = rec.ResumeFileName != "" || rec.ResumeURL != ""
	}
	return domain.Evaluate(s.Load(ctx, uid), uploaded)
}

func (s *profileService) Record(ctx context.Context, uid int64) (domain.UserRecord, error) {
	return s.repo.FindRecord(ctx, uid)
}

func (s *profileService) AllRecords(ctx context.Context) ([]domain.UserRecord, error) {
	return s.repo.AllRecords(ctx)
}

func (s *profileService) UpdateFilePointer(ctx context.Context, uid int64, fileName, fileURL string) error {
	return s.repo.UpdateFilePointer(ctx, uid, fileName, fileURL)
}
