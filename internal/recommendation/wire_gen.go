// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package recommendation

import (
	"github.com/unilab/portal/internal/profile"
	"github.com/unilab/portal/internal/recommendation/internal/service"
)

// Injectors from wire.go:

func InitModule(profileModule *profile.Module) *Module {
	profileService := profileModule.Svc
	exportService := service.NewExportService(profileService)
	handler := initHandler(exportService)
	module := &Module{
		Hdl: handler,
		Svc: exportService,
	}
	return module
}
