package dto

import (
	"time"

	"dispatch/internal/entities"
)

type Address struct {
	Line1      string   `json:"line1"`
	City       string   `json:"city"`
	PostalCode string   `json:"postalCode,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
}

type Parcel struct {
	Size  string `json:"size,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type Mission struct {
	ID            string     `json:"id"`
	Reference     string     `json:"reference"`
	Status        string     `json:"status"`
	OwnerID       string     `json:"ownerId"`
	DriverID      *string    `json:"driverId"`
	Pickup        Address    `json:"pickup"`
	Dropoff       Address    `json:"dropoff"`
	Parcel        Parcel     `json:"parcel"`
	PriceEstimate *float64   `json:"priceEstimate,omitempty"`
	Eta           *time.Time `json:"eta,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt"`
	AssignedAt    *time.Time `json:"assignedAt"`
	PickedUpAt    *time.Time `json:"pickedUpAt"`
	InTransitAt   *time.Time `json:"inTransitAt"`
	DeliveredAt   *time.Time `json:"deliveredAt"`
}

type CreateMissionRequest struct {
	Pickup        Address    `json:"pickup"`
	Dropoff       Address    `json:"dropoff"`
	Parcel        Parcel     `json:"parcel"`
	PriceEstimate *float64   `json:"priceEstimate,omitempty"`
	Eta           *time.Time `json:"eta,omitempty"`
}

type AssignMissionRequest struct {
	// DriverID - uuid водителя или его email
	DriverID string `json:"driverId"`
}

type LocationRequest struct {
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
	Accuracy *float64 `json:"accuracy,omitempty"`
}

func FromMission(m *entities.Mission) Mission {
	res := Mission{
		ID:            m.ID.String(),
		Reference:     m.Reference,
		Status:        m.Status.String(),
		OwnerID:       m.OwnerID.String(),
		Pickup:        fromAddress(m.Pickup),
		Dropoff:       fromAddress(m.Dropoff),
		Parcel:        Parcel{Size: m.Parcel.Size, Notes: m.Parcel.Notes},
		PriceEstimate: m.PriceEstimate,
		Eta:           m.Eta,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		AssignedAt:    m.AssignedAt,
		PickedUpAt:    m.PickedUpAt,
		InTransitAt:   m.InTransitAt,
		DeliveredAt:   m.DeliveredAt,
	}
	if m.DriverID != nil {
		driverID := m.DriverID.String()
		res.DriverID = &driverID
	}
	return res
}

func FromMissions(missions []entities.Mission) []Mission {
	res := make([]Mission, 0, len(missions))
	for i := range missions {
		res = append(res, FromMission(&missions[i]))
	}
	return res
}

func (r CreateMissionRequest) ToDraft() entities.MissionDraft {
	return entities.MissionDraft{
		Pickup:        r.Pickup.toEntity(),
		Dropoff:       r.Dropoff.toEntity(),
		Parcel:        entities.Parcel{Size: r.Parcel.Size, Notes: r.Parcel.Notes},
		PriceEstimate: r.PriceEstimate,
		Eta:           r.Eta,
	}
}

func fromAddress(a entities.Address) Address {
	return Address{
		Line1:      a.Line1,
		City:       a.City,
		PostalCode: a.PostalCode,
		Notes:      a.Notes,
		Lat:        a.Lat,
		Lng:        a.Lng,
	}
}

func (a Address) toEntity() entities.Address {
	return entities.Address{
		Line1:      a.Line1,
		City:       a.City,
		PostalCode: a.PostalCode,
		Notes:      a.Notes,
		Lat:        a.Lat,
		Lng:        a.Lng,
	}
}
