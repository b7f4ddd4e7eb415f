package mission

import (
	"errors"
	"fmt"
)

// Классы ошибок, по ним handlers выбирают HTTP статус.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConflict          = errors.New("conflict")
)

var (
	ErrInvalidMissionID = fmt.Errorf("invalid mission id: %w", ErrValidation)
	ErrInvalidUserID    = fmt.Errorf("invalid user id: %w", ErrValidation)
	ErrInvalidAddress   = fmt.Errorf("invalid address: %w", ErrValidation)
	ErrInvalidLocation  = fmt.Errorf("invalid location: %w", ErrValidation)

	ErrMissionNotFound = fmt.Errorf("mission %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrDriverNotFound  = fmt.Errorf("driver %w", ErrNotFound)

	ErrNotMissionOwner   = fmt.Errorf("caller is not the mission owner: %w", ErrForbidden)
	ErrNotAssignedDriver = fmt.Errorf("caller is not the assigned driver: %w", ErrForbidden)
	ErrNotADriver        = fmt.Errorf("user cannot be assigned missions: %w", ErrForbidden)
	ErrNotADispatcher    = fmt.Errorf("user cannot manage missions: %w", ErrForbidden)

	ErrMissionTerminal  = fmt.Errorf("mission is finished: %w", ErrInvalidTransition)
	ErrUnexpectedStatus = fmt.Errorf("unexpected mission status: %w", ErrInvalidTransition)

	ErrReferenceTaken     = fmt.Errorf("mission reference already taken: %w", ErrConflict)
	ErrReferenceExhausted = fmt.Errorf("could not generate unique mission reference: %w", ErrConflict)
	ErrConcurrentUpdate   = fmt.Errorf("mission was modified concurrently: %w", ErrConflict)
)
