package mission_create_post

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/handlers/rest/response"
	"dispatch/internal/pkg/auth"
	"dispatch/pkg/logger"
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

	var request dto.CreateMissionRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		response.Error(h.log, w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	created, err := h.service.Create(r.Context(), caller.UserID, request.ToDraft())
	if err != nil {
		response.MissionError(h.log, w, err)
		return
	}

	h.log.With(
		logger.NewField("mission", created.ID.String()),
		logger.NewField("reference", created.Reference),
		logger.NewField("owner", caller.UserID.String()),
	).Info("mission created")

	response.JSON(h.log, w, http.StatusCreated, dto.FromMission(created))
}
