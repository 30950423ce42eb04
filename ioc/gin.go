package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/unilab/portal/internal/document"
	"github.com/unilab/portal/internal/profile"
	"github.com/unilab/portal/internal/recommendation"
)

func initGinxServer(sp session.Provider,
	profileModule *profile.Module,
	docModule *document.Module,
	recModule *recommendation.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-API-Key"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许校内域名过来的
			return strings.Contains(origin, "unilab.edu")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 导出接口自带三条鉴权通道，不能挂登录中间件
	recModule.Hdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	profileModule.Hdl.PrivateRoutes(res.Engine)
	docModule.Hdl.PrivateRoutes(res.Engine)
	return res
}
