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

package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unilab/portal/internal/document/internal/domain"
	cachemocks "github.com/unilab/portal/internal/document/internal/repository/cache/mocks"
	"github.com/unilab/portal/internal/document/internal/service"
	svcmocks "github.com/unilab/portal/internal/document/internal/service/mocks"
	"github.com/unilab/portal/internal/profile"
	profilemocks "github.com/unilab/portal/internal/profile/mocks"
	"go.uber.org/mock/gomock"
)

var errDown = errors.New("端点不可用")

const (
	testKey       = "resumes/123/resume.pdf"
	testObjectURL = "https://store.example.com/objects/resumes/123/resume.pdf"
)

func pdfFile(name string, size int64) domain.File {
	return domain.File{
		Name:        name,
		Size:        size,
		ContentType: "application/pdf",
		Data:        strings.NewReader("%PDF-"),
	}
}

func testGrant() domain.UploadGrant {
	return domain.UploadGrant{
		UploadURL: "https://store.example.com/put/abc",
		Key:       testKey,
	}
}

// expectNegotiateAndTransfer 协商和直传两步成功的公共期望
func expectNegotiateAndTransfer(eps *svcmocks.MockEndpointClient) {
	eps.EXPECT().Negotiate(gomock.Any(), service.NegotiateReq{
		FileName: "resume.pdf",
		FileType: "application/pdf",
		FileSize: 2 << 20,
	}).Return(testGrant(), nil)
	eps.EXPECT().Transfer(gomock.Any(), "https://store.example.com/put/abc",
		"application/pdf", gomock.Any()).Return(nil)
}

func newTestService(eps service.EndpointClient, kc *cachemocks.MockKeyCache,
	ps profile.Service) service.UploadService {
	return service.NewUploadService(eps, kc, ps, "https://store.example.com/objects/")
}

func TestUploadService_Upload_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		file    domain.File
		wantErr error
	}{
		{
			name:    "超过10MB_立即拒绝",
			file:    pdfFile("resume.pdf", 12<<20),
			wantErr: service.ErrFileTooLarge,
		},
		{
			name:    "exe扩展名_立即拒绝",
			file:    pdfFile("resume.exe", 2<<20),
			wantErr: service.ErrInvalidFileType,
		},
		{
			name:    "没有扩展名_立即拒绝",
			file:    pdfFile("resume", 2<<20),
			wantErr: service.ErrInvalidFileType,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			// 校验不过的文件一个请求都不发,所以不设任何期望
			eps := svcmocks.NewMockEndpointClient(ctrl)
			svc := newTestService(eps, cachemocks.NewMockKeyCache(ctrl),
				profilemocks.NewMockProfileService(ctrl))
			_, err := svc.Upload(context.Background(), 123, tc.file)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestUploadService_Upload(t *testing.T) {
	t.Run("全链路成功_不打扰备用端点", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		eps := svcmocks.NewMockEndpointClient(ctrl)
		expectNegotiateAndTransfer(eps)
		eps.EXPECT().Confirm(gomock.Any(), testKey).Return(nil)
		ps := profilemocks.NewMockProfileService(ctrl)
		// 文件指针直写和对象键缓存独立于确认路径
		ps.EXPECT().UpdateFilePointer(gomock.Any(), int64(123), "resume.pdf", testObjectURL).
			Return(nil)
		kc := cachemocks.NewMockKeyCache(ctrl)
		kc.EXPECT().Set(gomock.Any(), int64(123), testKey).Return(nil)
		svc := newTestService(eps, kc, ps)

		key, err := svc.Upload(context.Background(), 123, pdfFile("resume.pdf", 2<<20))
		require.NoError(t, err)
		assert.Equal(t, testKey, key)
	})

	t.Run("确认端点挂_备用端点带完整快照顶上", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		details := profile.DefaultResumeDetails()
		details.Skills = []string{"Go", "SQL"}
		legacy, merr := json.Marshal(details)
		require.NoError(t, merr)

		eps := svcmocks.NewMockEndpointClient(ctrl)
		expectNegotiateAndTransfer(eps)
		eps.EXPECT().Confirm(gomock.Any(), testKey).Return(errDown)
		ps := profilemocks.NewMockProfileService(ctrl)
		ps.EXPECT().Load(gomock.Any(), int64(123)).Return(details)
		// 快照重发,没落库的档案编辑不会被只写文件指针的更新冲掉
		eps.EXPECT().UpdateRecord(gomock.Any(), int64(123), service.RecordUpdate{
			ResumeFileName: "resume.pdf",
			ResumeURL:      testObjectURL,
			ResumeData:     string(legacy),
			Resume:         details,
			Education:      details.Education,
			Experience:     details.Experience,
			Skills:         details.Skills,
			Projects:       details.Projects,
		}).Return(nil)
		ps.EXPECT().UpdateFilePointer(gomock.Any(), int64(123), "resume.pdf", testObjectURL).
			Return(nil)
		kc := cachemocks.NewMockKeyCache(ctrl)
		kc.EXPECT().Set(gomock.Any(), int64(123), testKey).Return(nil)
		svc := newTestService(eps, kc, ps)

		key, err := svc.Upload(context.Background(), 123, pdfFile("resume.pdf", 2<<20))
		require.NoError(t, err)
		assert.Equal(t, testKey, key)
	})

	t.Run("两个确认路径都挂_主存储直写兜底", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		eps := svcmocks.NewMockEndpointClient(ctrl)
		expectNegotiateAndTransfer(eps)
		eps.EXPECT().Confirm(gomock.Any(), testKey).Return(errDown)
		eps.EXPECT().UpdateRecord(gomock.Any(), int64(123), gomock.Any()).Return(errDown)
		ps := profilemocks.NewMockProfileService(ctrl)
		ps.EXPECT().Load(gomock.Any(), int64(123)).Return(profile.DefaultResumeDetails())
		ps.EXPECT().UpdateFilePointer(gomock.Any(), int64(123), "resume.pdf", testObjectURL).
			Return(nil)
		kc := cachemocks.NewMockKeyCache(ctrl)
		kc.EXPECT().Set(gomock.Any(), int64(123), testKey).Return(nil)
		svc := newTestService(eps, kc, ps)

		_, err := svc.Upload(context.Background(), 123, pdfFile("resume.pdf", 2<<20))
		require.NoError(t, err)
	})

	t.Run("三条更新路径全挂_报确认失败_对象键仍然缓存", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		eps := svcmocks.NewMockEndpointClient(ctrl)
		expectNegotiateAndTransfer(eps)
		eps.EXPECT().Confirm(gomock.Any(), testKey).Return(errDown)
		eps.EXPECT().UpdateRecord(gomock.Any(), int64(123), gomock.Any()).Return(errDown)
		ps := profilemocks.NewMockProfileService(ctrl)
		ps.EXPECT().Load(gomock.Any(), int64(123)).Return(profile.DefaultResumeDetails())
		ps.EXPECT().UpdateFilePointer(gomock.Any(), int64(123), "resume.pdf", testObjectURL).
			Return(errDown)
		kc := cachemocks.NewMockKeyCache(ctrl)
		kc.EXPECT().Set(gomock.Any(), int64(123), testKey).Return(nil)
		svc := newTestService(eps, kc, ps)

		_, err := svc.Upload(context.Background(), 123, pdfFile("resume.pdf", 2<<20))
		assert.ErrorIs(t, err, service.ErrNotConfirmed)
	})

	t.Run("直传失败_终止_不走任何确认路径", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		eps := svcmocks.NewMockEndpointClient(ctrl)
		eps.EXPECT().Negotiate(gomock.Any(), gomock.Any()).Return(testGrant(), nil)
		eps.EXPECT().Transfer(gomock.Any(), "https://store.example.com/put/abc",
			"application/pdf", gomock.Any()).Return(errDown)
		svc := newTestService(eps, cachemocks.NewMockKeyCache(ctrl),
			profilemocks.NewMockProfileService(ctrl))

		_, err := svc.Upload(context.Background(), 123, pdfFile("resume.pdf", 2<<20))
		assert.ErrorIs(t, err, service.ErrTransferFailed)
	})

	t.Run("协商失败_终止", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		eps := svcmocks.NewMockEndpointClient(ctrl)
		eps.EXPECT().Negotiate(gomock.Any(), gomock.Any()).
			Return(domain.UploadGrant{}, errDown)
		svc := newTestService(eps, cachemocks.NewMockKeyCache(ctrl),
			profilemocks.NewMockProfileService(ctrl))

		_, err := svc.Upload(context.Background(), 123, pdfFile("resume.pdf", 2<<20))
		assert.ErrorIs(t, err, service.ErrTransferFailed)
	})
}

func TestUploadService_ViewURL(t *testing.T) {
	testCases := []struct {
		name     string
		key      string
		wantMode domain.ViewMode
		// 发给读 URL 端点的键要剥掉服务商前缀
		wantViewed string
	}{
		{
			name:       "pdf_内嵌打开",
			key:        "resumes/123/resume.pdf",
			wantMode:   domain.ViewModeInline,
			wantViewed: "resumes/123/resume.pdf",
		},
		{
			name:       "服务商前缀被剥掉",
			key:        "public/resumes/123/resume.pdf",
			wantMode:   domain.ViewModeInline,
			wantViewed: "resumes/123/resume.pdf",
		},
		{
			name:       "docx_强制下载",
			key:        "resumes/123/resume.docx",
			wantMode:   domain.ViewModeDownload,
			wantViewed: "resumes/123/resume.docx",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			eps := svcmocks.NewMockEndpointClient(ctrl)
			eps.EXPECT().ViewURL(gomock.Any(), tc.wantViewed).
				Return("https://store.example.com/signed/"+tc.wantViewed, nil)
			svc := newTestService(eps, cachemocks.NewMockKeyCache(ctrl),
				profilemocks.NewMockProfileService(ctrl))
			view, err := svc.ViewURL(context.Background(), 123, tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.wantMode, view.Mode)
		})
	}

	t.Run("其它扩展名_尽力直连_不请求短时效URL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		eps := svcmocks.NewMockEndpointClient(ctrl)
		svc := newTestService(eps, cachemocks.NewMockKeyCache(ctrl),
			profilemocks.NewMockProfileService(ctrl))
		view, err := svc.ViewURL(context.Background(), 123, "resumes/123/resume.txt")
		require.NoError(t, err)
		assert.Equal(t, domain.ViewModeDirect, view.Mode)
		assert.Equal(t, "https://store.example.com/objects/resumes/123/resume.txt", view.URL)
	})

	t.Run("每次都现取URL_不缓存", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		eps := svcmocks.NewMockEndpointClient(ctrl)
		eps.EXPECT().ViewURL(gomock.Any(), "a.pdf").
			Return("https://store.example.com/signed/a.pdf", nil).Times(2)
		svc := newTestService(eps, cachemocks.NewMockKeyCache(ctrl),
			profilemocks.NewMockProfileService(ctrl))
		_, err := svc.ViewURL(context.Background(), 123, "a.pdf")
		require.NoError(t, err)
		_, err = svc.ViewURL(context.Background(), 123, "a.pdf")
		require.NoError(t, err)
	})
}
