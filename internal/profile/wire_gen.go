// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package profile

import (
	"github.com/ecodeclub/ecache"
	"github.com/unilab/portal/internal/profile/internal/repository"
	"github.com/unilab/portal/internal/profile/internal/repository/cache"
	"github.com/unilab/portal/internal/profile/internal/service"
	"github.com/unilab/portal/internal/profile/internal/web"
	"gorm.io/gorm"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, ec ecache.Cache) *Module {
	profileDAO := initDAO(db)
	resumeCache := cache.NewResumeECache(ec)
	profileRepository := repository.NewCachedProfileRepository(profileDAO, resumeCache)
	remoteSink := initFallbackSink()
	profileService := service.NewProfileService(profileRepository, remoteSink)
	handler := web.NewHandler(profileService)
	module := &Module{
		Hdl: handler,
		Svc: profileService,
	}
	return module
}
