package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/migrate"
	"dispatch/internal/pkg/postgres"
	"dispatch/pkg/logger/zap_adapter"
	"dispatch/pkg/querier"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		// переменные окружения выставляет Makefile из .env.test
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		// схема та же, что у cmd/migrator
		if err := migrate.Run(ctx, zapLogger, cfg, migrate.CommandUp); err != nil {
			panic(err)
		}

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE missions, users CASCADE;
	`)
	require.NoError(t, err)
}

// SeedUsers - диспетчер, два водителя и администратор.
const SeedUsers = `
	INSERT INTO users (id, name, email, role) VALUES
		('6f1c2f5e-3f7a-4b55-9d2c-1a0c9a1d0001', 'Анна Диспетчер', 'anna@dispatch.test', 'DISPATCHER'),
		('a2d4c6e8-1111-4a2b-8c3d-000000000002', 'Иван Водитель', 'Ivan@Dispatch.test', 'DRIVER'),
		('a2d4c6e8-1111-4a2b-8c3d-000000000003', 'Петр Водитель', 'petr@dispatch.test', 'DRIVER'),
		('a2d4c6e8-1111-4a2b-8c3d-000000000009', 'Админ', 'admin@dispatch.test', 'ADMIN');
`
