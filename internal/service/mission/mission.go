package mission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/entities"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"

	"github.com/google/uuid"
)

// MaxReferenceAttempts - сколько раз Create генерирует номер миссии при коллизиях.
const MaxReferenceAttempts = 5

const (
	referenceInitialInterval = 5 * time.Millisecond
	referenceMaxInterval     = 50 * time.Millisecond
	referenceMaxElapsedTime  = 2 * time.Second
	referenceRandomization   = 0.5
	referenceMultiplier      = 2
)

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type Service struct {
	repository       Repository
	users            UserStore
	notifier         Notifier
	referenceFactory ReferenceFactory
	txManager        TxManager
	referenceRetrier retrier
	now              func() time.Time
}

func New(
	repository Repository,
	users UserStore,
	notifier Notifier,
	referenceFactory ReferenceFactory,
	txManager TxManager,
) *Service {
	retryConfig := retrierconfig.Config{
		InitialInterval: referenceInitialInterval,
		MaxInterval:     referenceMaxInterval,
		MaxElapsedTime:  referenceMaxElapsedTime,
		Randomization:   referenceRandomization,
		Multiplier:      referenceMultiplier,
		MaxRetries:      MaxReferenceAttempts - 1,
		ShouldRetry: func(err error) bool {
			return errors.Is(err, ErrReferenceTaken)
		},
	}

	return &Service{
		repository:       repository,
		users:            users,
		notifier:         notifier,
		referenceFactory: referenceFactory,
		txManager:        txManager,
		referenceRetrier: backoff_adapter.New(retryConfig),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, draft entities.MissionDraft) (*entities.Mission, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidUserID
	}
	if !isValidAddress(draft.Pickup) {
		return nil, fmt.Errorf("pickup: %w", ErrInvalidAddress)
	}
	if !isValidAddress(draft.Dropoff) {
		return nil, fmt.Errorf("dropoff: %w", ErrInvalidAddress)
	}

	owner, err := s.findUser(ctx, ownerID, ErrUserNotFound)
	if err != nil {
		return nil, fmt.Errorf("find owner: %w", err)
	}
	if !owner.Role.CanManageMissions() {
		return nil, ErrNotADispatcher
	}

	now := s.now()
	mission := &entities.Mission{
		ID:            uuid.New(),
		Status:        entities.MissionPending,
		OwnerID:       ownerID,
		Pickup:        draft.Pickup,
		Dropoff:       draft.Dropoff,
		Parcel:        draft.Parcel,
		PriceEstimate: draft.PriceEstimate,
		Eta:           draft.Eta,
		CreatedAt:     now,
	}

	var (
		created  *entities.Mission
		attempts int
	)
	err = s.referenceRetrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempts++
		mission.Reference = s.referenceFactory.Generate(now)

		var err error
		created, err = s.repository.Create(ctx, mission)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrReferenceTaken) {
			return nil, fmt.Errorf("%w after %d attempts: %w", ErrReferenceExhausted, attempts, err)
		}
		return nil, fmt.Errorf("create mission: %w", err)
	}

	return created, nil
}

// Assign назначает водителя. driverRef - id водителя или его email.
// Назначать можно только миссию в PENDING, переназначения нет.
func (s *Service) Assign(ctx context.Context, missionID uuid.UUID, driverRef string) (*entities.Mission, error) {
	if missionID == uuid.Nil {
		return nil, ErrInvalidMissionID
	}
	driverRef = strings.TrimSpace(driverRef)
	if driverRef == "" {
		return nil, ErrInvalidUserID
	}

	var (
		updated *entities.Mission
		driver  *entities.User
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, missionID)
		if err != nil {
			return fmt.Errorf("get mission: %w", err)
		}

		driver, err = s.resolveDriver(ctx, driverRef)
		if err != nil {
			return err
		}

		next, err := transition(current, command{
			target: entities.MissionAssigned,
			driver: driver,
		}, s.now())
		if err != nil {
			return err
		}

		updated, err = s.repository.Transition(ctx, current.Status, next)
		if err != nil {
			return fmt.Errorf("save assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.MissionAssigned(ctx, updated, driver)
	return updated, nil
}

func (s *Service) Cancel(ctx context.Context, ownerID, missionID uuid.UUID) (*entities.Mission, error) {
	return s.move(ctx, missionID, command{target: entities.MissionCancelled, callerID: ownerID})
}

func (s *Service) MarkPickedUp(ctx context.Context, missionID, driverID uuid.UUID) (*entities.Mission, error) {
	return s.move(ctx, missionID, command{target: entities.MissionPickedUp, callerID: driverID})
}

func (s *Service) MarkInTransit(ctx context.Context, missionID, driverID uuid.UUID) (*entities.Mission, error) {
	return s.move(ctx, missionID, command{target: entities.MissionInTransit, callerID: driverID})
}

func (s *Service) MarkDelivered(ctx context.Context, missionID, driverID uuid.UUID) (*entities.Mission, error) {
	return s.move(ctx, missionID, command{target: entities.MissionDelivered, callerID: driverID})
}

func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entities.Mission, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidUserID
	}

	missions, err := s.repository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list owner missions: %w", err)
	}
	return missions, nil
}

func (s *Service) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]entities.Mission, error) {
	if driverID == uuid.Nil {
		return nil, ErrInvalidUserID
	}

	missions, err := s.repository.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("list driver missions: %w", err)
	}
	return missions, nil
}

func (s *Service) GetOwned(ctx context.Context, ownerID, missionID uuid.UUID) (*entities.Mission, error) {
	m, err := s.get(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if m.OwnerID != ownerID {
		return nil, ErrNotMissionOwner
	}
	return m, nil
}

// GetAssigned отдает водителю только его миссии, чужие выглядят как несуществующие.
func (s *Service) GetAssigned(ctx context.Context, driverID, missionID uuid.UUID) (*entities.Mission, error) {
	m, err := s.get(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if m.DriverID == nil || *m.DriverID != driverID {
		return nil, ErrMissionNotFound
	}
	return m, nil
}

// ReportLocation пробрасывает координаты водителя подписчикам миссии.
// Статус миссии не проверяется, только то, что миссия назначена этому водителю.
func (s *Service) ReportLocation(ctx context.Context, driverID, missionID uuid.UUID, location entities.Location) error {
	if !isValidLocation(location) {
		return ErrInvalidLocation
	}

	m, err := s.get(ctx, missionID)
	if err != nil {
		return err
	}
	if m.DriverID == nil || *m.DriverID != driverID {
		return ErrNotAssignedDriver
	}

	s.notifier.DriverLocation(ctx, m, location)
	return nil
}

func (s *Service) CountByStatus(ctx context.Context) (map[entities.MissionStatus]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count missions: %w", err)
	}
	return counts, nil
}

func (s *Service) move(ctx context.Context, missionID uuid.UUID, cmd command) (*entities.Mission, error) {
	if missionID == uuid.Nil {
		return nil, ErrInvalidMissionID
	}
	if cmd.callerID == uuid.Nil {
		return nil, ErrInvalidUserID
	}

	var updated *entities.Mission
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, missionID)
		if err != nil {
			return fmt.Errorf("get mission: %w", err)
		}

		next, err := transition(current, cmd, s.now())
		if err != nil {
			return err
		}

		updated, err = s.repository.Transition(ctx, current.Status, next)
		if err != nil {
			return fmt.Errorf("save %s transition: %w", cmd.target, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.MissionStatusChanged(ctx, updated)
	return updated, nil
}

func (s *Service) get(ctx context.Context, missionID uuid.UUID) (*entities.Mission, error) {
	if missionID == uuid.Nil {
		return nil, ErrInvalidMissionID
	}

	m, err := s.repository.GetByID(ctx, missionID)
	if err != nil {
		return nil, fmt.Errorf("get mission: %w", err)
	}
	return m, nil
}

func (s *Service) resolveDriver(ctx context.Context, driverRef string) (*entities.User, error) {
	var (
		driver *entities.User
		err    error
	)
	if id, parseErr := uuid.Parse(driverRef); parseErr == nil {
		driver, err = s.findUser(ctx, id, ErrDriverNotFound)
	} else if strings.Contains(driverRef, "@") {
		driver, err = s.users.FindByEmail(ctx, driverRef)
		if errors.Is(err, ErrUserNotFound) {
			err = ErrDriverNotFound
		}
	} else {
		return nil, ErrInvalidUserID
	}
	if err != nil {
		return nil, fmt.Errorf("find driver: %w", err)
	}

	if !driver.Role.CanBeAssignedMissions() {
		return nil, ErrNotADriver
	}
	return driver, nil
}

func (s *Service) findUser(ctx context.Context, id uuid.UUID, notFound error) (*entities.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, notFound
		}
		return nil, err
	}
	return user, nil
}
