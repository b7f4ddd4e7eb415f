package mission_location_post

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/handlers/rest/response"
	"dispatch/internal/pkg/auth"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отвечает 202: координаты уходят в брокер без гарантии доставки.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	missionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(h.log, w, http.StatusBadRequest, "mission id must be a UUID")
		return
	}

	var request dto.LocationRequest
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil || request.Lat == nil || request.Lng == nil {
		response.Error(h.log, w, http.StatusBadRequest, "lat and lng are required")
		return
	}

	location := entities.Location{
		Lat:      *request.Lat,
		Lng:      *request.Lng,
		Accuracy: request.Accuracy,
	}
	err = h.service.ReportLocation(r.Context(), caller.UserID, missionID, location)
	if err != nil {
		response.MissionError(h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
