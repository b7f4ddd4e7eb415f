package mission

import (
	"fmt"
	"time"

	"dispatch/internal/entities"

	"github.com/google/uuid"
)

type actor int

const (
	// actorDispatcher - любой пользователь с правом управлять миссиями, роль проверяет вызывающий код.
	actorDispatcher actor = iota + 1
	actorOwner
	actorDriver
)

type edge struct {
	to    entities.MissionStatus
	actor actor
}

// lifecycle - единственный источник правды о допустимых переходах.
// Терминальные статусы отсутствуют в таблице, из них переходов нет.
var lifecycle = map[entities.MissionStatus][]edge{
	entities.MissionPending: {
		{to: entities.MissionAssigned, actor: actorDispatcher},
		{to: entities.MissionCancelled, actor: actorOwner},
	},
	entities.MissionAssigned: {
		{to: entities.MissionPickedUp, actor: actorDriver},
		{to: entities.MissionCancelled, actor: actorOwner},
	},
	entities.MissionPickedUp: {
		{to: entities.MissionInTransit, actor: actorDriver},
		{to: entities.MissionCancelled, actor: actorOwner},
	},
	entities.MissionInTransit: {
		{to: entities.MissionDelivered, actor: actorDriver},
		{to: entities.MissionCancelled, actor: actorOwner},
	},
}

// requiredActor выводится из lifecycle: у каждого целевого статуса ровно один исполнитель.
var requiredActor = func() map[entities.MissionStatus]actor {
	res := make(map[entities.MissionStatus]actor, len(entities.MissionStatuses))
	for _, edges := range lifecycle {
		for _, e := range edges {
			if prev, ok := res[e.to]; ok && prev != e.actor {
				panic(fmt.Sprintf("mission lifecycle: status %s has conflicting actors", e.to))
			}
			res[e.to] = e.actor
		}
	}
	return res
}()

type command struct {
	target   entities.MissionStatus
	callerID uuid.UUID
	// driver заполняется только для назначения
	driver *entities.User
}

// transition проверяет права вызывающего, затем допустимость перехода, и
// возвращает копию миссии в новом статусе. Исходная миссия не меняется.
func transition(current *entities.Mission, cmd command, now time.Time) (*entities.Mission, error) {
	who, ok := requiredActor[cmd.target]
	if !ok {
		return nil, fmt.Errorf("%w: no transition leads to %s", ErrUnexpectedStatus, cmd.target)
	}

	if err := authorize(current, who, cmd.callerID); err != nil {
		return nil, err
	}

	if current.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: status %s", ErrMissionTerminal, current.Status)
	}

	if !allowed(current.Status, cmd.target) {
		return nil, fmt.Errorf("%w: cannot move from %s to %s", ErrUnexpectedStatus, current.Status, cmd.target)
	}

	next := *current
	next.Status = cmd.target
	next.UpdatedAt = &now

	switch cmd.target {
	case entities.MissionAssigned:
		if cmd.driver == nil {
			return nil, fmt.Errorf("%w: driver is required for assignment", ErrValidation)
		}
		driverID := cmd.driver.ID
		next.DriverID = &driverID
		next.AssignedAt = stamp(current.AssignedAt, now)
	case entities.MissionPickedUp:
		next.PickedUpAt = stamp(current.PickedUpAt, now)
	case entities.MissionInTransit:
		next.InTransitAt = stamp(current.InTransitAt, now)
	case entities.MissionDelivered:
		next.DeliveredAt = stamp(current.DeliveredAt, now)
	}

	return &next, nil
}

func authorize(m *entities.Mission, who actor, callerID uuid.UUID) error {
	switch who {
	case actorOwner:
		if m.OwnerID != callerID {
			return ErrNotMissionOwner
		}
	case actorDriver:
		if m.DriverID == nil || *m.DriverID != callerID {
			return ErrNotAssignedDriver
		}
	case actorDispatcher:
	}
	return nil
}

func allowed(from, to entities.MissionStatus) bool {
	for _, e := range lifecycle[from] {
		if e.to == to {
			return true
		}
	}
	return false
}

// stamp не перезаписывает уже выставленную метку времени.
func stamp(existing *time.Time, now time.Time) *time.Time {
	if existing != nil {
		return existing
	}
	return &now
}
