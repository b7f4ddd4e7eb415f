package mission_progress_post

import (
	"context"
	"fmt"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/handlers/rest/response"
	"dispatch/internal/pkg/auth"
	"dispatch/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Step - шаг водителя по миссии, один handler обслуживает все три маршрута.
type Step int

const (
	StepPickup Step = iota + 1
	StepStartTransit
	StepDeliver
)

func (s Step) String() string {
	switch s {
	case StepPickup:
		return "pickup"
	case StepStartTransit:
		return "start-transit"
	case StepDeliver:
		return "deliver"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

type Handler struct {
	log  handlerLogger
	move func(ctx context.Context, missionID, driverID uuid.UUID) (*entities.Mission, error)
}

func New(log handlerLogger, service Service, step Step) *Handler {
	var move func(ctx context.Context, missionID, driverID uuid.UUID) (*entities.Mission, error)
	switch step {
	case StepPickup:
		move = service.MarkPickedUp
	case StepStartTransit:
		move = service.MarkInTransit
	case StepDeliver:
		move = service.MarkDelivered
	default:
		panic(fmt.Sprintf("mission_progress_post: unknown %s", step))
	}

	return &Handler{
		log:  log.With(logger.NewField("step", step.String())),
		move: move,
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

	updated, err := h.move(r.Context(), missionID, caller.UserID)
	if err != nil {
		response.MissionError(h.log, w, err)
		return
	}

	h.log.With(
		logger.NewField("mission", updated.ID.String()),
		logger.NewField("driver", caller.UserID.String()),
		logger.NewField("status", updated.Status.String()),
	).Info("mission progressed")

	response.JSON(h.log, w, http.StatusOK, dto.FromMission(updated))
}
