//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mission_progress_post_test
package mission_progress_post

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
	MarkPickedUp(ctx context.Context, missionID, driverID uuid.UUID) (*entities.Mission, error)
	MarkInTransit(ctx context.Context, missionID, driverID uuid.UUID) (*entities.Mission, error)
	MarkDelivered(ctx context.Context, missionID, driverID uuid.UUID) (*entities.Mission, error)
}
