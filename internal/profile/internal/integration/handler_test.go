//go:build e2e

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/unilab/portal/internal/profile/internal/repository"
	"github.com/unilab/portal/internal/profile/internal/repository/cache"
	"github.com/unilab/portal/internal/profile/internal/repository/dao"
	"github.com/unilab/portal/internal/profile/internal/service"
	"github.com/unilab/portal/internal/profile/internal/web"
	"github.com/unilab/portal/internal/test"
	testioc "github.com/unilab/portal/internal/test/ioc"
)

const uid = 2061

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.ProfileDAO
	// fallbackHits 备用端点收到的写请求数
	fallbackHits atomic.Int64
	fallback     *httptest.Server
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewGORMProfileDAO(s.db)

	s.fallback = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.fallbackHits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))

	ec := testioc.InitCache()
	repo := repository.NewCachedProfileRepository(s.dao, cache.NewResumeECache(ec))
	svc := service.NewProfileService(repo,
		service.NewFallbackSink(http.DefaultClient, s.fallback.URL, ""))
	hdl := web.NewHandler(svc)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey,
			session.NewMemorySession(session.Claims{
				Uid: uid,
			}))
	})
	hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownSuite() {
	s.fallback.Close()
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `user_profiles`").Error)
}

func (s *HandlerTestSuite) TestSaveThenLoad() {
	t := s.T()
	saveReq, err := http.NewRequest(http.MethodPost,
		"/profile/resume", iox.NewJSONReader(web.SaveResumeReq{
			Resume: web.ResumeVO{
				Education: []web.EducationVO{
					{
						Institution: "测试大学",
						Degree:      "本科",
						Major:       "软件工程",
					},
				},
				Skills: []string{"Go"},
			},
		}))
	require.NoError(t, err)
	saveReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, saveReq)
	require.Equal(t, 200, recorder.Code)

	loadReq, err := http.NewRequest(http.MethodGet, "/profile/resume", nil)
	require.NoError(t, err)
	loadRecorder := test.NewJSONResponseRecorder[web.ResumeVO]()
	s.server.ServeHTTP(loadRecorder, loadReq)
	require.Equal(t, 200, loadRecorder.Code)
	vo := loadRecorder.MustScan().Data
	require.Equal(t, "测试大学", vo.Education[0].Institution)
	require.Equal(t, []string{"Go"}, vo.Skills)
	// 主存储里结构化和旧版两个字段都要写
	entity, err := s.dao.FindByUid(context.Background(), uid)
	require.NoError(t, err)
	require.NotEmpty(t, entity.Resume)
	require.NotEmpty(t, entity.ResumeData)
	// 主存储写成功就不该再打扰备用端点
	require.Equal(t, int64(0), s.fallbackHits.Load())
}

func (s *HandlerTestSuite) TestSync() {
	t := s.T()
	before := s.fallbackHits.Load()
	req, err := http.NewRequest(http.MethodPost, "/profile/resume/sync", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	// 同步是全量重放，备用端点也要收到
	require.Greater(t, s.fallbackHits.Load(), before)
}

func (s *HandlerTestSuite) TestCompleteness() {
	t := s.T()
	req, err := http.NewRequest(http.MethodGet, "/profile/completeness", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[map[string]any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
