package mission_cancel_post

import (
	"net/http"

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

	cancelled, err := h.service.Cancel(r.Context(), caller.UserID, missionID)
	if err != nil {
		response.MissionError(h.log, w, err)
		return
	}

	h.log.With(
		logger.NewField("mission", cancelled.ID.String()),
		logger.NewField("owner", caller.UserID.String()),
	).Info("mission cancelled")

	response.JSON(h.log, w, http.StatusOK, dto.FromMission(cancelled))
}
