// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/unilab/portal/internal/document"
	"github.com/unilab/portal/internal/profile"
	"github.com/unilab/portal/internal/recommendation"
)

import (
	_ "github.com/go-sql-driver/mysql"
)

// Injectors from wire.go:

func InitApp() (*App, error) {
	cmdable := InitRedis()
	provider := InitSession(cmdable)
	db := InitDB()
	cache := InitCache(cmdable)
	module := profile.InitModule(db, cache)
	documentModule := document.InitModule(cache, module)
	recommendationModule := recommendation.InitModule(module)
	component := initGinxServer(provider, module, documentModule, recommendationModule)
	app := &App{
		Web: component,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)
