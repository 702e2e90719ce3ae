//go:build wireinject
// +build wireinject

package main

import (
	"Tipbox/config"
	"Tipbox/dao"
	"Tipbox/dao/cache"
	"Tipbox/handler"
	"Tipbox/pkg/client"
	"Tipbox/pkg/database"
	"Tipbox/pkg/server"
	"Tipbox/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Tip), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
