package mission

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/mission"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "missions"

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, m *entities.Mission) (*entities.Mission, error) {
	missionDB := FromDomain(m)

	query, args, err := qb.
		Insert(table).
		Columns(columns...).
		Values(missionDB.insertValues()...).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected mission repository create error: %w", err)
	}

	var created MissionDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(created.dest()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, mission.ErrReferenceTaken
		}
		return nil, fmt.Errorf("unexpected mission repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Mission, error) {
	return r.getOne(ctx, qb.Select(columns...).From(table).Where(sq.Eq{"id": id}))
}

// GetByIDForUpdate берет FOR UPDATE только внутри транзакции, иначе блокировка бессмысленна.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Mission, error) {
	builder := qb.Select(columns...).From(table).Where(sq.Eq{"id": id})
	if r.querier.InTx(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}
	return r.getOne(ctx, builder)
}

func (r *Repository) Transition(ctx context.Context, from entities.MissionStatus, next *entities.Mission) (*entities.Mission, error) {
	nextDB := FromDomain(next)

	query, args, err := qb.
		Update(table).
		Set("status", nextDB.Status).
		Set("driver_id", nextDB.DriverID).
		Set("updated_at", nextDB.UpdatedAt).
		Set("assigned_at", nextDB.AssignedAt).
		Set("picked_up_at", nextDB.PickedUpAt).
		Set("in_transit_at", nextDB.InTransitAt).
		Set("delivered_at", nextDB.DeliveredAt).
		Where(sq.Eq{"id": nextDB.ID, "status": from.String()}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected mission repository transition error: %w", err)
	}

	var saved MissionDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(saved.dest()...)
	if err == nil {
		return ToDomain(&saved), nil
	}
	if repository.IsConcurrencyConflict(err) {
		return nil, mission.ErrConcurrentUpdate
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected mission repository transition error: %w", err)
	}

	// ни одной строки: миссии нет или статус уже сменил кто-то другой
	exists, err := r.exists(ctx, nextDB.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, mission.ErrMissionNotFound
	}
	return nil, mission.ErrConcurrentUpdate
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entities.Mission, error) {
	return r.list(ctx, sq.Eq{"owner_id": ownerID})
}

func (r *Repository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]entities.Mission, error) {
	return r.list(ctx, sq.Eq{"driver_id": driverID})
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.MissionStatus]int64, error) {
	query, args, err := qb.
		Select("status", "COUNT(*)").
		From(table).
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected mission repository count error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected mission repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.MissionStatus]int64, len(entities.MissionStatuses))
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected mission repository count error: %w", err)
		}
		counts[entities.MissionStatus(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected mission repository count error: %w", err)
	}

	return counts, nil
}

func (r *Repository) getOne(ctx context.Context, builder sq.SelectBuilder) (*entities.Mission, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected mission repository get error: %w", err)
	}

	var missionDB MissionDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(missionDB.dest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, mission.ErrMissionNotFound
		}
		return nil, fmt.Errorf("unexpected mission repository get error: %w", err)
	}

	return ToDomain(&missionDB), nil
}

func (r *Repository) list(ctx context.Context, filter sq.Eq) ([]entities.Mission, error) {
	query, args, err := qb.
		Select(columns...).
		From(table).
		Where(filter).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected mission repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected mission repository list error: %w", err)
	}
	defer rows.Close()

	missionModels := make([]MissionDB, 0, 8)
	for rows.Next() {
		var missionDB MissionDB
		if err := rows.Scan(missionDB.dest()...); err != nil {
			return nil, fmt.Errorf("unexpected mission repository list error: %w", err)
		}
		missionModels = append(missionModels, missionDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected mission repository list error: %w", err)
	}

	return ToDomainList(missionModels), nil
}

func (r *Repository) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM missions WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected mission repository exists error: %w", err)
	}
	return exists, nil
}
