//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"dispatch/internal/gateway/http/broker"
	"dispatch/internal/handlers/tasks/mission_stats"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/mission_reference"
	"dispatch/internal/repository"
	missionRepo "dispatch/internal/repository/mission"
	userRepo "dispatch/internal/repository/user"
	"dispatch/internal/service/channel_token"
	missionService "dispatch/internal/service/mission"
	"dispatch/internal/service/realtime"

	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideMissionRepository,
	provideUserRepository,

	wire.Bind(new(repository.Querier), new(*querier.Querier)),
	wire.Bind(new(missionService.Repository), new(*missionRepo.Repository)),
	wire.Bind(new(missionService.UserStore), new(*userRepo.Repository)),
	wire.Bind(new(missionService.TxManager), new(*tx.Manager)),
)

var missionSet = wire.NewSet(
	repositorySet,
	provideHTTPClient,
	provideBrokerGateway,
	provideNotifier,
	mission_reference.New,
	provideMissionService,

	wire.Bind(new(realtime.Gateway), new(*broker.BrokerGateway)),
	wire.Bind(new(missionService.Notifier), new(*realtime.Notifier)),
	wire.Bind(new(missionService.ReferenceFactory), new(*mission_reference.ReferenceFactory)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		missionSet,

		provideSigningKey,
		provideIssuer,
		provideVerifier,

		provideMissionStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceMission), new(*missionService.Service)),
		wire.Bind(new(ChannelTokens), new(*channel_token.Issuer)),
		wire.Bind(new(mission_stats.Service), new(*missionService.Service)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-driver-location)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		missionSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
