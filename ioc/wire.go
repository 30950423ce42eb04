//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/unilab/portal/internal/document"
	"github.com/unilab/portal/internal/profile"
	"github.com/unilab/portal/internal/recommendation"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		profile.InitModule,
		document.InitModule,
		recommendation.InitModule,
		InitSession,
		initGinxServer)
	return new(App), nil
}
