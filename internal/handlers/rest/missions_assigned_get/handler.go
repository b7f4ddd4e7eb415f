package missions_assigned_get

import (
	"net/http"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/handlers/rest/response"
	"dispatch/internal/pkg/auth"
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

	missions, err := h.service.ListByDriver(r.Context(), caller.UserID)
	if err != nil {
		response.MissionError(h.log, w, err)
		return
	}

	response.JSON(h.log, w, http.StatusOK, dto.FromMissions(missions))
}
