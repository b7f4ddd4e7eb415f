//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mission_owned_get_test
package mission_owned_get

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
	GetOwned(ctx context.Context, ownerID, missionID uuid.UUID) (*entities.Mission, error)
}
