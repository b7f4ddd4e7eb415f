package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/mission"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	query := `SELECT id, name, email, role
		FROM users
		WHERE id = $1`

	return r.findOne(ctx, query, id)
}

// FindByEmail сравнивает email без учета регистра.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT id, name, email, role
		FROM users
		WHERE lower(email) = $1`

	return r.findOne(ctx, query, strings.ToLower(strings.TrimSpace(email)))
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*entities.User, error) {
	var userDB UserDB
	err := r.querier.QueryRow(ctx, query, arg).
		Scan(
			&userDB.ID,
			&userDB.Name,
			&userDB.Email,
			&userDB.Role,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, mission.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository find error: %w", err)
	}

	return &entities.User{
		ID:    userDB.ID,
		Name:  userDB.Name,
		Email: userDB.Email,
		Role:  entities.UserRole(userDB.Role),
	}, nil
}
