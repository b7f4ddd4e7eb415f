package entities

import (
	"time"

	"github.com/google/uuid"
)

type MissionStatus string

const (
	MissionPending   MissionStatus = "PENDING"
	MissionAssigned  MissionStatus = "ASSIGNED"
	MissionPickedUp  MissionStatus = "PICKED_UP"
	MissionInTransit MissionStatus = "IN_TRANSIT"
	MissionDelivered MissionStatus = "DELIVERED"
	MissionCancelled MissionStatus = "CANCELLED"
)

var MissionStatuses = []MissionStatus{
	MissionPending,
	MissionAssigned,
	MissionPickedUp,
	MissionInTransit,
	MissionDelivered,
	MissionCancelled,
}

func (s MissionStatus) String() string {
	return string(s)
}

func (s MissionStatus) IsValid() bool {
	switch s {
	case MissionPending, MissionAssigned, MissionPickedUp, MissionInTransit, MissionDelivered, MissionCancelled:
		return true
	default:
		return false
	}
}

func (s MissionStatus) IsTerminal() bool {
	return s == MissionDelivered || s == MissionCancelled
}

type Address struct {
	Line1      string
	City       string
	PostalCode string
	Notes      string
	Lat        *float64
	Lng        *float64
}

type Parcel struct {
	Size  string
	Notes string
}

type Mission struct {
	ID        uuid.UUID
	Reference string
	Status    MissionStatus
	OwnerID   uuid.UUID
	DriverID  *uuid.UUID

	Pickup  Address
	Dropoff Address
	Parcel  Parcel

	PriceEstimate *float64
	Eta           *time.Time

	CreatedAt   time.Time
	UpdatedAt   *time.Time
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	InTransitAt *time.Time
	DeliveredAt *time.Time
}

// MissionDraft - то, что присылает диспетчер при создании миссии.
type MissionDraft struct {
	Pickup        Address
	Dropoff       Address
	Parcel        Parcel
	PriceEstimate *float64
	Eta           *time.Time
}

type Location struct {
	Lat      float64
	Lng      float64
	Accuracy *float64
}
