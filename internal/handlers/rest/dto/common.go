package dto

type Error struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type Ping struct {
	Message string `json:"message"`
	// ServerTime в epoch millis, в той же шкале, что timestamp realtime событий.
	ServerTime int64 `json:"serverTime"`
}
