package mission

import (
	"dispatch/internal/entities"
)

func ToDomain(m *MissionDB) *entities.Mission {
	if m == nil {
		return nil
	}

	return &entities.Mission{
		ID:        m.ID,
		Reference: m.Reference,
		Status:    entities.MissionStatus(m.Status),
		OwnerID:   m.OwnerID,
		DriverID:  m.DriverID,
		Pickup: entities.Address{
			Line1:      m.PickupLine1,
			City:       m.PickupCity,
			PostalCode: m.PickupPostalCode,
			Notes:      m.PickupNotes,
			Lat:        m.PickupLat,
			Lng:        m.PickupLng,
		},
		Dropoff: entities.Address{
			Line1:      m.DropoffLine1,
			City:       m.DropoffCity,
			PostalCode: m.DropoffPostalCode,
			Notes:      m.DropoffNotes,
			Lat:        m.DropoffLat,
			Lng:        m.DropoffLng,
		},
		Parcel: entities.Parcel{
			Size:  m.ParcelSize,
			Notes: m.ParcelNotes,
		},
		PriceEstimate: m.PriceEstimate,
		Eta:           m.Eta,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		AssignedAt:    m.AssignedAt,
		PickedUpAt:    m.PickedUpAt,
		InTransitAt:   m.InTransitAt,
		DeliveredAt:   m.DeliveredAt,
	}
}

func FromDomain(m *entities.Mission) *MissionDB {
	if m == nil {
		return nil
	}

	return &MissionDB{
		ID:                m.ID,
		Reference:         m.Reference,
		Status:            m.Status.String(),
		OwnerID:           m.OwnerID,
		DriverID:          m.DriverID,
		PickupLine1:       m.Pickup.Line1,
		PickupCity:        m.Pickup.City,
		PickupPostalCode:  m.Pickup.PostalCode,
		PickupNotes:       m.Pickup.Notes,
		PickupLat:         m.Pickup.Lat,
		PickupLng:         m.Pickup.Lng,
		DropoffLine1:      m.Dropoff.Line1,
		DropoffCity:       m.Dropoff.City,
		DropoffPostalCode: m.Dropoff.PostalCode,
		DropoffNotes:      m.Dropoff.Notes,
		DropoffLat:        m.Dropoff.Lat,
		DropoffLng:        m.Dropoff.Lng,
		ParcelSize:        m.Parcel.Size,
		ParcelNotes:       m.Parcel.Notes,
		PriceEstimate:     m.PriceEstimate,
		Eta:               m.Eta,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		AssignedAt:        m.AssignedAt,
		PickedUpAt:        m.PickedUpAt,
		InTransitAt:       m.InTransitAt,
		DeliveredAt:       m.DeliveredAt,
	}
}

func ToDomainList(missionsDB []MissionDB) []entities.Mission {
	if len(missionsDB) == 0 {
		return []entities.Mission{}
	}

	result := make([]entities.Mission, len(missionsDB))
	for i := range missionsDB {
		result[i] = *ToDomain(&missionsDB[i])
	}
	return result
}
