//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=subscription_token_post_test
package subscription_token_post

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

type Issuer interface {
	IssueSubscriptionToken(subject, channel string) (string, error)
}

// MissionAccess проверяет, что вызывающий имеет отношение к миссии.
type MissionAccess interface {
	GetOwned(ctx context.Context, ownerID, missionID uuid.UUID) (*entities.Mission, error)
	GetAssigned(ctx context.Context, driverID, missionID uuid.UUID) (*entities.Mission, error)
}
