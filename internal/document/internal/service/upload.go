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
	"fmt"
	"strings"

	"github.com/gotomicro/ego/core/elog"
	"github.com/unilab/portal/internal/document/internal/domain"
	"github.com/unilab/portal/internal/document/internal/repository/cache"
	"github.com/unilab/portal/internal/profile"
)

var (
	// ErrFileTooLarge 和 ErrInvalidFileType 在发任何网络请求之前就返回
	ErrFileTooLarge    = errors.New("文件超过大小上限")
	ErrInvalidFileType = errors.New("不支持的文件类型")
	// ErrTransferFailed 直传对象存储失败
	ErrTransferFailed = errors.New("文件直传失败")
	// ErrNotConfirmed 三条更新路径全部失败，记录没有收敛
	ErrNotConfirmed = errors.New("上传确认失败")
)

// providerPrefix 存储服务商会在对象键前面挂的路径前缀，取读 URL 前剥掉
const providerPrefix = "public/"

//go:generate mockgen -source=./upload.go -package=svcmocks -destination=mocks/upload.mock.go UploadService
type UploadService interface {
	// Upload 走完整的直传协议，返回对象键
	Upload(ctx context.Context, uid int64, f domain.File) (string, error)
	// ViewURL 按扩展名给出查看方式和短时效读 URL
	ViewURL(ctx context.Context, uid int64, key string) (domain.View, error)
}

type uploadService struct {
	client     EndpointClient
	keyCache   cache.KeyCache
	profileSvc profile.Service
	// 对象的公开访问前缀，备用端点和直写路径用它拼 resumeUrl
	objectBaseURL string
	logger        *elog.Component
}

func NewUploadService(client EndpointClient, keyCache cache.KeyCache,
	profileSvc profile.Service, objectBaseURL string) UploadService {
	return &uploadService{
		client:        client,
		keyCache:      keyCache,
		profileSvc:    profileSvc,
		objectBaseURL: strings.TrimSuffix(objectBaseURL, "/"),
		logger:        elog.DefaultLogger,
	}
}

func (s *uploadService) Upload(ctx context.Context, uid int64, f domain.File) (string, error) {
	// 纯本地校验，不合规的文件一个请求都不发
	if f.Size > domain.MaxFileSize {
		return "", ErrFileTooLarge
	}
	if !domain.AllowedExt(f.Name) {
		return "", ErrInvalidFileType
	}

	grant, err := s.client.Negotiate(ctx, NegotiateReq{
		FileName: f.Name,
		FileType: f.ContentType,
		FileSize: f.Size,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	if err := s.client.Transfer(ctx, grant.UploadURL, f.ContentType, f.Data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	// 传完之后有三条互相独立的更新路径，任何一条成功记录就收敛：
	// 1. 确认端点 2. 备用的记录直写端点 3. 主存储文件指针直写
	// 三条路径互不依赖，谁先谁后也不重要
	converged := s.confirm(ctx, uid, f.Name, grant.Key)
	if err := s.profileSvc.UpdateFilePointer(ctx, uid, f.Name, s.objectURL(grant.Key)); err != nil {
		s.logger.Warn("主存储文件指针直写失败",
			elog.Int64("uid", uid), elog.FieldErr(err))
	} else {
		converged = true
	}

	// 不管远端结局如何，对象键先缓存，留作日后重建查看链接的最后来源
	if err := s.keyCache.Set(ctx, uid, grant.Key); err != nil {
		s.logger.Warn("对象键写缓存失败",
			elog.Int64("uid", uid), elog.FieldErr(err))
	}

	if !converged {
		return "", ErrNotConfirmed
	}
	return grant.Key, nil
}

// confirm 先走确认端点，不行再把完整档案快照发给备用端点
// 快照一起重发，确认失败时没持久化的档案编辑也不会丢
func (s *uploadService) confirm(ctx context.Context, uid int64, fileName, key string) bool {
	err := s.client.Confirm(ctx, key)
	if err == nil {
		return true
	}
	s.logger.Warn("确认端点不可用，改走备用记录直写",
		elog.Int64("uid", uid), elog.FieldErr(err))

	snapshot := s.profileSvc.Load(ctx, uid)
	legacy, merr := json.Marshal(snapshot)
	if merr != nil {
		legacy = []byte("{}")
	}
	err = s.client.UpdateRecord(ctx, uid, RecordUpdate{
		ResumeFileName: fileName,
		ResumeURL:      s.objectURL(key),
		ResumeData:     string(legacy),
		Resume:         snapshot,
		Education:      snapshot.Education,
		Experience:     snapshot.Experience,
		Skills:         snapshot.Skills,
		Projects:       snapshot.Projects,
	})
	if err != nil {
		s.logger.Warn("备用记录直写失败",
			elog.Int64("uid", uid), elog.FieldErr(err))
		return false
	}
	return true
}

func (s *uploadService) ViewURL(ctx context.Context, uid int64, key string) (domain.View, error) {
	key = strings.TrimPrefix(key, providerPrefix)
	switch domain.Ext(key) {
	case ".pdf":
		url, err := s.client.ViewURL(ctx, key)
		if err != nil {
			return domain.View{}, err
		}
		return domain.View{URL: url, Mode: domain.ViewModeInline}, nil
	case ".doc", ".docx":
		url, err := s.client.ViewURL(ctx, key)
		if err != nil {
			return domain.View{}, err
		}
		return domain.View{URL: url, Mode: domain.ViewModeDownload}, nil
	default:
		// 不认识的扩展名尽力直连
		return domain.View{
			URL:  s.objectURL(key),
			Mode: domain.ViewModeDirect,
		}, nil
	}
}

func (s *uploadService) objectURL(key string) string {
	return s.objectBaseURL + "/" + key
}
