//go:build wireinject

package main

import (
	"github.com/google/wire"
	"gorm.io/gorm"
	"plume.ink/plume-blog-server/app/domain"
	"plume.ink/plume-blog-server/app/infrastructure"
	"plume.ink/plume-blog-server/app/infrastructure/database"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository"
	"plume.ink/plume-blog-server/app/interfaces/http"
	"plume.ink/plume-blog-server/app/interfaces/http/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		database.NewDB,
		repository.RepositoryProvider,
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		routes.RouteProvider,
		http.NewHttpServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}

func ProvideDatabase() *gorm.DB {
	return database.DB
}

func CreateDataInitializer() (*DataInitializer, error) {
	wire.Build(
		ProvideDatabase,
		repository.RepositoryProvider,
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		wire.Struct(new(DataInitializer), "*"),
	)
	return nil, nil
}
