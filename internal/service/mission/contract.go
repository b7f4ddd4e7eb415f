//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mission_test
package mission

import (
	"context"
	"time"

	"dispatch/internal/entities"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, mission *entities.Mission) (*entities.Mission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Mission, error)
	// GetByIDForUpdate блокирует строку до конца транзакции.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Mission, error)
	// Transition сохраняет next, только если в БД миссия все еще в статусе from.
	Transition(ctx context.Context, from entities.MissionStatus, next *entities.Mission) (*entities.Mission, error)

	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entities.Mission, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]entities.Mission, error)
	CountByStatus(ctx context.Context) (map[entities.MissionStatus]int64, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}

// Notifier ничего не возвращает: ошибки доставки событий не влияют на переход.
type Notifier interface {
	MissionAssigned(ctx context.Context, mission *entities.Mission, driver *entities.User)
	MissionStatusChanged(ctx context.Context, mission *entities.Mission)
	DriverLocation(ctx context.Context, mission *entities.Mission, location entities.Location)
}

type ReferenceFactory interface {
	Generate(now time.Time) string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
