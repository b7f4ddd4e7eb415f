//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=realtime_test
package realtime

import (
	"context"

	"dispatch/pkg/logger"
)

type notifierLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Gateway interface {
	Publish(ctx context.Context, channel string, data any) error
}
