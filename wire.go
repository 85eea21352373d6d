//go:build wireinject
// +build wireinject

package main

import (
	"organizer/cmd"
	"organizer/database"
	"organizer/internal/config"
	"organizer/internal/handlers"
	"organizer/internal/repository"
	"organizer/internal/services"

	"github.com/google/wire"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("organizer.yaml")
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		services.NewAuthService,
		handlers.NewAuthHandler,
		repository.NewUserRepository,
		services.NewBoxService,
		handlers.NewBoxHandler,
		repository.NewBoxRepository,
		services.NewPhotoService,
		handlers.NewPhotoHandler,
		repository.NewPhotoRepository,
		services.NewCodeService,
		services.NewQRService,
		services.NewLookupService,
		handlers.NewScanHandler,
		services.NewStorageService,
		services.NewLogService,
		services.NewJanitorService,
		database.SetupDatabase,
		Provider,
	)
	return nil, nil
}
