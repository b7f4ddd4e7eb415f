package mission

import (
	"time"

	"github.com/google/uuid"
)

type MissionDB struct {
	ID        uuid.UUID
	Reference string
	Status    string
	OwnerID   uuid.UUID
	DriverID  *uuid.UUID

	PickupLine1      string
	PickupCity       string
	PickupPostalCode string
	PickupNotes      string
	PickupLat        *float64
	PickupLng        *float64

	DropoffLine1      string
	DropoffCity       string
	DropoffPostalCode string
	DropoffNotes      string
	DropoffLat        *float64
	DropoffLng        *float64

	ParcelSize  string
	ParcelNotes string

	PriceEstimate *float64
	Eta           *time.Time

	CreatedAt   time.Time
	UpdatedAt   *time.Time
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	InTransitAt *time.Time
	DeliveredAt *time.Time
}

// порядок совпадает с dest() и insertValues()
var columns = []string{
	"id", "reference", "status", "owner_id", "driver_id",
	"pickup_line1", "pickup_city", "pickup_postal_code", "pickup_notes", "pickup_lat", "pickup_lng",
	"dropoff_line1", "dropoff_city", "dropoff_postal_code", "dropoff_notes", "dropoff_lat", "dropoff_lng",
	"parcel_size", "parcel_notes", "price_estimate", "eta",
	"created_at", "updated_at", "assigned_at", "picked_up_at", "in_transit_at", "delivered_at",
}

func (m *MissionDB) dest() []any {
	return []any{
		&m.ID, &m.Reference, &m.Status, &m.OwnerID, &m.DriverID,
		&m.PickupLine1, &m.PickupCity, &m.PickupPostalCode, &m.PickupNotes, &m.PickupLat, &m.PickupLng,
		&m.DropoffLine1, &m.DropoffCity, &m.DropoffPostalCode, &m.DropoffNotes, &m.DropoffLat, &m.DropoffLng,
		&m.ParcelSize, &m.ParcelNotes, &m.PriceEstimate, &m.Eta,
		&m.CreatedAt, &m.UpdatedAt, &m.AssignedAt, &m.PickedUpAt, &m.InTransitAt, &m.DeliveredAt,
	}
}

func (m *MissionDB) insertValues() []any {
	return []any{
		m.ID, m.Reference, m.Status, m.OwnerID, m.DriverID,
		m.PickupLine1, m.PickupCity, m.PickupPostalCode, m.PickupNotes, m.PickupLat, m.PickupLng,
		m.DropoffLine1, m.DropoffCity, m.DropoffPostalCode, m.DropoffNotes, m.DropoffLat, m.DropoffLng,
		m.ParcelSize, m.ParcelNotes, m.PriceEstimate, m.Eta,
		m.CreatedAt, m.UpdatedAt, m.AssignedAt, m.PickedUpAt, m.InTransitAt, m.DeliveredAt,
	}
}
