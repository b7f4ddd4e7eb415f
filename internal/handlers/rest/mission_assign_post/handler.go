package mission_assign_post

import (
	"encoding/json"
	"net/http"
	"strings"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/handlers/rest/response"
	"dispatch/internal/pkg/auth"
	"dispatch/pkg/logger"

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

	var request dto.AssignMissionRequest
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil || strings.TrimSpace(request.DriverID) == "" {
		response.Error(h.log, w, http.StatusBadRequest, "driverId is required")
		return
	}

	assigned, err := h.service.Assign(r.Context(), missionID, request.DriverID)
	if err != nil {
		response.MissionError(h.log, w, err)
		return
	}

	h.log.With(
		logger.NewField("mission", assigned.ID.String()),
		logger.NewField("driver", request.DriverID),
		logger.NewField("dispatcher", caller.UserID.String()),
	).Info("mission assigned")

	response.JSON(h.log, w, http.StatusOK, dto.FromMission(assigned))
}
