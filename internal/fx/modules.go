package fx

import (
	"arena-tracker/internal/api"
	"arena-tracker/internal/config"
	"arena-tracker/internal/database"
	"arena-tracker/internal/logger"
	"arena-tracker/internal/metrics"
	"arena-tracker/internal/repository"
	"arena-tracker/internal/server"
	"arena-tracker/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	metrics.Module,
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewMatchParticipantRepository),
	// api client
	fx.Provide(api.NewRiotClient),
	// svc
	fx.Provide(service.NewAccountService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewRosterService),
	fx.Provide(service.NewArenaService),
	// server
	fx.Provide(server.NewTrackerServer),
	fx.Provide(server.NewRouter),
)
