//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mission_cancel_post_test
package mission_cancel_post

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"

	"github.com/google/uuid"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Cancel(ctx context.Context, ownerID, missionID uuid.UUID) (*entities.Mission, error)
}
