package user

import "github.com/google/uuid"

type UserDB struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}
