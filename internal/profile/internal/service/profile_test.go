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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unilab/portal/internal/profile/internal/domain"
	"github.com/unilab/portal/internal/profile/internal/repository"
	repomocks "github.com/unilab/portal/internal/profile/internal/repository/mocks"
	svcmocks "github.com/unilab/portal/internal/profile/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

var errUnavailable = errors.New("后端不可用")

func testDetails() domain.ResumeDetails {
	d := domain.DefaultResumeDetails()
	d.Education[0] = domain.Education{Institution: "X", Degree: "BS", Major: "CS"}
	d.Skills = []string{"Go"}
	return d
}

func TestProfileService_Save(t *testing.T) {
	details := testDetails()
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.ProfileRepository, RemoteSink)
		want bool
	}{
		{
			name: "全部成功_备用端点不被打扰",
			mock: func(ctrl *gomock.Controller) (repository.ProfileRepository, RemoteSink) {
				repo := repomocks.NewMockProfileRepository(ctrl)
				repo.EXPECT().CacheResume(gomock.Any(), int64(123), details).Return(nil)
				repo.EXPECT().SaveResume(gomock.Any(), int64(123), details).Return(nil)
				fb := svcmocks.NewMockRemoteSink(ctrl)
				fb.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return repo, fb
			},
			want: true,
		},
		{
			name: "仅本地缓存成功_两个远端层都挂_仍然返回true",
			mock: func(ctrl *gomock.Controller) (repository.ProfileRepository, RemoteSink) {
				repo := repomocks.NewMockProfileRepository(ctrl)
				repo.EXPECT().CacheResume(gomock.Any(), int64(123), details).Return(nil)
				repo.EXPECT().SaveResume(gomock.Any(), int64(123), details).Return(errUnavailable)
				fb := svcmocks.NewMockRemoteSink(ctrl)
				fb.EXPECT().Save(gomock.Any(), int64(123), details).Return(errUnavailable)
				fb.EXPECT().Name().Return("fallback").AnyTimes()
				return repo, fb
			},
			want: true,
		},
		{
			name: "缓存写失败_主存储成功",
			mock: func(ctrl *gomock.Controller) (repository.ProfileRepository, RemoteSink) {
				repo := repomocks.NewMockProfileRepository(ctrl)
				repo.EXPECT().CacheResume(gomock.Any(), int64(123), details).Return(errUnavailable)
				repo.EXPECT().SaveResume(gomock.Any(), int64(123), details).Return(nil)
				fb := svcmocks.NewMockRemoteSink(ctrl)
				fb.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return repo, fb
			},
			want: true,
		},
		{
			name: "主存储挂_备用端点顶上",
			mock: func(ctrl *gomock.Controller) (repository.ProfileRepository, RemoteSink) {
				repo := repomocks.NewMockProfileRepository(ctrl)
				repo.EXPECT().CacheResume(gomock.Any(), int64(123), details).Return(nil)
				repo.EXPECT().SaveResume(gomock.Any(), int64(123), details).Return(errUnavailable)
				fb := svcmocks.NewMockRemoteSink(ctrl)
				fb.EXPECT().Save(gomock.Any(), int64(123), details).Return(nil)
				fb.EXPECT().Name().Return("fallback").AnyTimes()
				return repo, fb
			},
			want: true,
		},
		{
			name: "所有层全挂_返回false",
			mock: func(ctrl *gomock.Controller) (repository.ProfileRepository, RemoteSink) {
				repo := repomocks.NewMockProfileRepository(ctrl)
				repo.EXPECT().CacheResume(gomock.Any(), int64(123), details).Return(errUnavailable)
				repo.EXPECT().SaveResume(gomock.Any(), int64(123), details).Return(errUnavailable)
				fb := svcmocks.NewMockRemoteSink(ctrl)
				fb.EXPECT().Save(gomock.Any(), int64(123), details).Return(errUnavailable)
				fb.EXPECT().Name().Return("fallback").AnyTimes()
				return repo, fb
			},
			want: false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, fb := tc.mock(ctrl)
			svc := NewProfileService(repo, fb)
			got := svc.Save(context.Background(), 123, details)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProfileService_Sync(t *testing.T) {
	t.Run("缓存为空_无可同步", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockProfileRepository(ctrl)
		repo.EXPECT().CachedResume(gomock.Any(), int64(123)).
			Return(domain.ResumeDetails{}, errUnavailable)
		svc := NewProfileService(repo, svcmocks.NewMockRemoteSink(ctrl))
		err := svc.Sync(context.Background(), 123)
		assert.ErrorIs(t, err, ErrNothingToSync)
	})

	t.Run("同步重放到所有远端层", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		details := testDetails()
		repo := repomocks.NewMockProfileRepository(ctrl)
		repo.EXPECT().CachedResume(gomock.Any(), int64(123)).Return(details, nil)
		repo.EXPECT().SaveResume(gomock.Any(), int64(123), details).Return(nil)
		fb := svcmocks.NewMockRemoteSink(ctrl)
		fb.EXPECT().Save(gomock.Any(), int64(123), details).Return(nil)
		svc := NewProfileService(repo, fb)
		require.NoError(t, svc.Sync(context.Background(), 123))
	})

	t.Run("缓存不变_连续两次同步收敛到同一内容", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		details := testDetails()
		repo := repomocks.NewMockProfileRepository(ctrl)
		repo.EXPECT().CachedResume(gomock.Any(), int64(123)).Return(details, nil).Times(2)
		// 重复写可以接受,但写的内容必须一样
		repo.EXPECT().SaveResume(gomock.Any(), int64(123), details).Return(nil).Times(2)
		fb := svcmocks.NewMockRemoteSink(ctrl)
		fb.EXPECT().Save(gomock.Any(), int64(123), details).Return(nil).Times(2)
		svc := NewProfileService(repo, fb)
		require.NoError(t, svc.Sync(context.Background(), 123))
		require.NoError(t, svc.Sync(context.Background(), 123))
	})

	t.Run("缓存里的空列表同步前补齐占位", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockProfileRepository(ctrl)
		repo.EXPECT().CachedResume(gomock.Any(), int64(123)).
			Return(domain.ResumeDetails{}, nil)
		repo.EXPECT().SaveResume(gomock.Any(), int64(123), domain.DefaultResumeDetails()).
			Return(nil)
		fb := svcmocks.NewMockRemoteSink(ctrl)
		fb.EXPECT().Save(gomock.Any(), int64(123), domain.DefaultResumeDetails()).Return(nil)
		svc := NewProfileService(repo, fb)
		require.NoError(t, svc.Sync(context.Background(), 123))
	})
}

func TestProfileService_Load(t *testing.T) {
	structured := testDetails()
	data, err := json.Marshal(structured)
	require.NoError(t, err)

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) repository.ProfileRepository
		want domain.ResumeDetails
	}{
		{
			name: "主存储结构化字段优先_顺手回填缓存",
			mock: func(ctrl *gomock.Controller) repository.ProfileRepository {
				repo := repomocks.NewMockProfileRepository(ctrl)
				repo.EXPECT().FindRecord(gomock.Any(), int64(123)).
					Return(domain.UserRecord{Resume: string(data)}, nil)
				repo.EXPECT().CacheResume(gomock.Any(), int64(123), structured).Return(nil)
				return repo
			},
			want: structured,
		},
		{
			name: "结构化缺失_退到旧版JSON串",
			mock: func(ctrl *gomock.Controller) repository.ProfileRepository {
				repo := repomocks.NewMockProfileRepository(ctrl)
				repo.EXPECT().FindRecord(gomock.Any(), int64(123)).
					Return(domain.UserRecord{ResumeData: `{"skills":["Python"]}`}, nil)
				repo.EXPECT().CacheResume(gomock.Any(), int64(123), domain.ResumeDetails{
					Education:  []domain.Education{{}},
					Experience: []domain.Experience{{}},
					Skills:     []string{"Python"},
					Projects:   []domain.Project{{}},
				}).Return(nil)
				return repo
			},
			want: domain.ResumeDetails{
				Education:  []domain.Education{{}},
				Experience: []domain.Experience{{}},
				Skills:     []string{"Python"},
				Projects:   []domain.Project{{}},
			},
		},
		{
			name: "旧版JSON串损坏_吞掉_退到本地缓存",
			mock: func(ctrl *gomock.Controller) repository.ProfileRepository {
				repo := repomocks.NewMockProfileRepository(ctrl)
				repo.EXPECT().FindRecord(gomock.Any(), int64(123)).
					Return(domain.UserRecord{ResumeData: `{broken`}, nil)
				repo.EXPECT().CachedResume(gomock.Any(), int64(123)).Return(structured, nil)
				return repo
			},
			want: structured,
		},
		{
			name: "主存储不可用_退到本地缓存",
			mock: func(ctrl *gomock.Controller) repository.ProfileRepository {
				repo := repomocks.NewMockProfileRepository(ctrl)
				repo.EXPECT().FindRecord(gomock.Any(), int64(123)).
					Return(domain.UserRecord{}, errUnavailable)
				repo.EXPECT().CachedResume(gomock.Any(), int64(123)).Return(structured, nil)
				return repo
			},
			want: structured,
		},
		{
			name: "所有层都没有数据_给默认值",
			mock: func(ctrl *gomock.Controller) repository.ProfileRepository {
				repo := repomocks.NewMockProfileRepository(ctrl)
				repo.EXPECT().FindRecord(gomock.Any(), int64(123)).
					Return(domain.UserRecord{}, errUnavailable)
				repo.EXPECT().CachedResume(gomock.Any(), int64(123)).
					Return(domain.ResumeDetails{}, errUnavailable)
				return repo
			},
			want: domain.DefaultResumeDetails(),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewProfileService(tc.mock(ctrl), svcmocks.NewMockRemoteSink(ctrl))
			got := svc.Load(context.Background(), 123)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProfileService_Completeness(t *testing.T) {
	structured := testDetails()
	structured.Skills = []string{"Python", "SQL"}
	structured.Education[0].Seniority = "senior"
	data, err := json.Marshal(structured)
	require.NoError(t, err)

	t.Run("没传简历文件_不算完整", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockProfileRepository(ctrl)
		// 完整度评估先查文件指针,随后的 Load 再读一次记录
		repo.EXPECT().FindRecord(gomock.Any(), int64(123)).
			Return(domain.UserRecord{Resume: string(data)}, nil).Times(2)
		repo.EXPECT().CacheResume(gomock.Any(), int64(123), structured).Return(nil)
		svc := NewProfileService(repo, svcmocks.NewMockRemoteSink(ctrl))
		got := svc.Completeness(context.Background(), 123)
		assert.True(t, got.EducationComplete)
		assert.True(t, got.SkillsComplete)
		assert.False(t, got.ResumeFileUploaded)
		assert.False(t, got.IsComplete)
	})

	t.Run("简历文件指针就位_完整", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockProfileRepository(ctrl)
		repo.EXPECT().FindRecord(gomock.Any(), int64(123)).
			Return(domain.UserRecord{
				Resume:         string(data),
				ResumeFileName: "resume.pdf",
			}, nil).Times(2)
		repo.EXPECT().CacheResume(gomock.Any(), int64(123), structured).Return(nil)
		svc := NewProfileService(repo, svcmocks.NewMockRemoteSink(ctrl))
		got := svc.Completeness(context.Background(), 123)
		assert.True(t, got.ResumeFileUploaded)
		assert.True(t, got.IsComplete)
	})
}
