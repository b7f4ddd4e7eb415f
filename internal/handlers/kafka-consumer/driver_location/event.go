package driver_location

import (
	"errors"
	"fmt"

	"dispatch/internal/entities"

	"github.com/google/uuid"
)

var errBadEvent = errors.New("bad driver location event")

// locationEvent - GPS отметка от мобильного клиента водителя.
type locationEvent struct {
	MissionID string   `json:"missionId"`
	DriverID  string   `json:"driverId"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
}

func (e locationEvent) parse() (missionID, driverID uuid.UUID, location entities.Location, err error) {
	missionID, err = uuid.Parse(e.MissionID)
	if err != nil {
		return uuid.Nil, uuid.Nil, entities.Location{}, fmt.Errorf("%w: missionId %q", errBadEvent, e.MissionID)
	}
	driverID, err = uuid.Parse(e.DriverID)
	if err != nil {
		return uuid.Nil, uuid.Nil, entities.Location{}, fmt.Errorf("%w: driverId %q", errBadEvent, e.DriverID)
	}
	if e.Lat == nil || e.Lng == nil {
		return uuid.Nil, uuid.Nil, entities.Location{}, fmt.Errorf("%w: lat and lng are required", errBadEvent)
	}

	return missionID, driverID, entities.Location{
		Lat:      *e.Lat,
		Lng:      *e.Lng,
		Accuracy: e.Accuracy,
	}, nil
}
