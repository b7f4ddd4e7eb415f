package realtime

import (
	"strconv"
	"time"

	"dispatch/internal/entities"
)

type EventType string

const (
	EventAssignment EventType = "assignment"
	EventStatus     EventType = "status"
	EventLocation   EventType = "location"
)

type AddressSummary struct {
	Line1 string `json:"line1"`
	City  string `json:"city"`
}

// Event - общая схема всех событий в канале миссии. Поля, не относящиеся к типу события, опускаются.
type Event struct {
	Type      EventType `json:"type"`
	MissionID string    `json:"missionId"`
	DriverID  string    `json:"driverId,omitempty"`
	// At - unix время в миллисекундах, строкой
	At string `json:"at"`

	Status      string     `json:"status,omitempty"`
	AssignedAt  *time.Time `json:"assignedAt,omitempty"`
	PickedUpAt  *time.Time `json:"pickedUpAt,omitempty"`
	InTransitAt *time.Time `json:"inTransitAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`

	DriverName string          `json:"driverName,omitempty"`
	Reference  string          `json:"reference,omitempty"`
	Pickup     *AddressSummary `json:"pickup,omitempty"`
	Dropoff    *AddressSummary `json:"dropoff,omitempty"`

	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
	Accuracy *float64 `json:"accuracy,omitempty"`
}

func epochMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func driverIDOf(m *entities.Mission) string {
	if m.DriverID == nil {
		return ""
	}
	return m.DriverID.String()
}

func assignmentEvent(m *entities.Mission, driver *entities.User, now time.Time) Event {
	ev := Event{
		Type:       EventAssignment,
		MissionID:  m.ID.String(),
		DriverID:   driverIDOf(m),
		At:         epochMillis(now),
		Status:     m.Status.String(),
		AssignedAt: m.AssignedAt,
		Reference:  m.Reference,
		Pickup:     &AddressSummary{Line1: m.Pickup.Line1, City: m.Pickup.City},
		Dropoff:    &AddressSummary{Line1: m.Dropoff.Line1, City: m.Dropoff.City},
	}
	if driver != nil {
		ev.DriverName = driver.Name
	}
	return ev
}

func statusEvent(m *entities.Mission, now time.Time) Event {
	return Event{
		Type:        EventStatus,
		MissionID:   m.ID.String(),
		DriverID:    driverIDOf(m),
		At:          epochMillis(now),
		Status:      m.Status.String(),
		AssignedAt:  m.AssignedAt,
		PickedUpAt:  m.PickedUpAt,
		InTransitAt: m.InTransitAt,
		DeliveredAt: m.DeliveredAt,
	}
}

// globalStatusEvent - урезанная форма для общего канала status.
func globalStatusEvent(m *entities.Mission, now time.Time) Event {
	return Event{
		Type:      EventStatus,
		MissionID: m.ID.String(),
		DriverID:  driverIDOf(m),
		At:        epochMillis(now),
		Status:    m.Status.String(),
	}
}

func locationEvent(m *entities.Mission, location entities.Location, now time.Time) Event {
	lat, lng := location.Lat, location.Lng
	return Event{
		Type:      EventLocation,
		MissionID: m.ID.String(),
		DriverID:  driverIDOf(m),
		At:        epochMillis(now),
		Lat:       &lat,
		Lng:       &lng,
		Accuracy:  location.Accuracy,
	}
}
