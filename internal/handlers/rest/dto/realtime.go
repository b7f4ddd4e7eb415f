package dto

type ConnectionTokenResponse struct {
	ConnectionToken string `json:"connectionToken"`
}

type SubscriptionTokenResponse struct {
	SubscriptionToken string `json:"subscriptionToken"`
	Channel           string `json:"channel"`
}

type MissionTokenRequest struct {
	MissionID string `json:"missionId"`
}

type DriverTokenRequest struct {
	DriverID string `json:"driverId"`
}
