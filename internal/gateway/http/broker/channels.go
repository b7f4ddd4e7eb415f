package broker

import "github.com/google/uuid"

// StatusChannel - глобальный канал мониторинга, в него зеркалируются все смены статусов.
const StatusChannel = "status"

const (
	missionChannelPrefix = "missions:"
	driverChannelPrefix  = "drivers:"
)

func MissionChannel(missionID uuid.UUID) string {
	return missionChannelPrefix + missionID.String()
}

func DriverChannel(driverID uuid.UUID) string {
	return driverChannelPrefix + driverID.String()
}
