package entities

import "github.com/google/uuid"

type UserRole string

const (
	RoleDriver     UserRole = "DRIVER"
	RoleDispatcher UserRole = "DISPATCHER"
	RoleAdmin      UserRole = "ADMIN"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleDriver, RoleDispatcher, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanBeAssignedMissions - может ли пользователь быть исполнителем миссии.
func (r UserRole) CanBeAssignedMissions() bool {
	return r == RoleDriver
}

// CanManageMissions - может ли пользователь создавать, назначать и отменять миссии.
func (r UserRole) CanManageMissions() bool {
	return r == RoleDispatcher || r == RoleAdmin
}

type User struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  UserRole
}
