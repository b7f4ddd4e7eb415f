package auth

import (
	"context"

	"dispatch/internal/entities"

	"github.com/google/uuid"
)

// Identity - проверенный вызывающий, его кладет в контекст middleware авторизации.
type Identity struct {
	UserID uuid.UUID
	Role   entities.UserRole
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
