// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package document

import (
	"github.com/ecodeclub/ecache"
	"github.com/unilab/portal/internal/document/internal/repository/cache"
	"github.com/unilab/portal/internal/document/internal/web"
	"github.com/unilab/portal/internal/profile"
)

// Injectors from wire.go:

func InitModule(ec ecache.Cache, profileModule *profile.Module) *Module {
	endpointClient := initEndpointClient()
	keyCache := cache.NewKeyECache(ec)
	uploadService := initUploadService(endpointClient, keyCache, profileModule)
	handler := web.NewHandler(uploadService)
	module := &Module{
		Hdl: handler,
		Svc: uploadService,
	}
	return module
}
