package app

import (
	"context"
	"net/http"
	"time"

	"dispatch/internal/gateway/http/broker"
	"dispatch/internal/handlers/tasks/mission_stats"
	"dispatch/internal/pkg/auth"
	"dispatch/internal/pkg/config"
	"dispatch/internal/repository"
	missionRepo "dispatch/internal/repository/mission"
	userRepo "dispatch/internal/repository/user"
	"dispatch/internal/service/channel_token"
	missionService "dispatch/internal/service/mission"
	"dispatch/internal/service/realtime"
	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// brokerClientTimeout - верхняя граница на HTTP вызов брокера, сам publish ограничен PublishTimeout.
const brokerClientTimeout = 10 * time.Second

// Переходы миссий берут FOR UPDATE и сверяют статус в UPDATE.
func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, tx.WithIsoLevel(pgx.ReadCommitted))
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideMissionRepository(querier repository.Querier) *missionRepo.Repository {
	return missionRepo.New(querier)
}

func provideUserRepository(querier repository.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideHTTPClient() *http.Client {
	return &http.Client{Timeout: brokerClientTimeout}
}

func provideBrokerGateway(client *http.Client, cfg *config.Config) *broker.BrokerGateway {
	return broker.New(client, cfg.Broker.APIBase, cfg.Broker.APIKey)
}

func provideNotifier(log logger.Logger, gateway realtime.Gateway, cfg *config.Config) *realtime.Notifier {
	return realtime.New(log, gateway, cfg.Broker.PublishTimeout)
}

func provideMissionService(
	repository missionService.Repository,
	users missionService.UserStore,
	notifier missionService.Notifier,
	referenceFactory missionService.ReferenceFactory,
	txManager missionService.TxManager,
) *missionService.Service {
	return missionService.New(
		repository,
		users,
		notifier,
		referenceFactory,
		txManager,
	)
}

func provideSigningKey(log logger.Logger, cfg *config.Config) (*channel_token.SigningKey, error) {
	return channel_token.LoadSigningKey(log, cfg.ChannelToken.PrivateKeyPath, cfg.ChannelToken.HMACSecret)
}

func provideIssuer(key *channel_token.SigningKey, cfg *config.Config) (*channel_token.Issuer, error) {
	return channel_token.New(key, cfg.ChannelToken.TTL)
}

func provideVerifier(cfg *config.Config) (*auth.Verifier, error) {
	return auth.NewVerifier(cfg.Auth.AccessSecret)
}

func provideMissionStatsTask(
	log logger.Logger,
	service mission_stats.Service,
	cfg *config.Config,
) *mission_stats.MissionStats {
	return mission_stats.NewMissionStats(log, service, cfg.Tasks.MissionStatsInterval)
}

func provideTaskList(
	missionStatsTask *mission_stats.MissionStats,
) []background.Task {
	return []background.Task{
		missionStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
