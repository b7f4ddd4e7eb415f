package subscription_token_post

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/gateway/http/broker"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/handlers/rest/response"
	"dispatch/internal/pkg/auth"
	"dispatch/internal/service/mission"
	"dispatch/pkg/logger"

	"github.com/google/uuid"
)

// Channel - на какой канал выдается токен.
type Channel int

const (
	ChannelMission Channel = iota + 1
	ChannelDriver
	ChannelStatus
)

var errBadRequest = errors.New("bad request")

type Handler struct {
	log      handlerLogger
	issuer   Issuer
	missions MissionAccess
	channel  Channel
}

func New(log handlerLogger, issuer Issuer, missions MissionAccess, channel Channel) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		issuer:   issuer,
		missions: missions,
		channel:  channel,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	channel, err := h.resolveChannel(r, caller)
	if err != nil {
		switch {
		case errors.Is(err, errBadRequest):
			response.Error(h.log, w, http.StatusBadRequest, err.Error())
		default:
			response.MissionError(h.log, w, err)
		}
		return
	}

	token, err := h.issuer.IssueSubscriptionToken(caller.UserID.String(), channel)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("channel", channel),
		).Error("issue subscription token")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response.JSON(h.log, w, http.StatusOK, dto.SubscriptionTokenResponse{
		SubscriptionToken: token,
		Channel:           channel,
	})
}

func (h *Handler) resolveChannel(r *http.Request, caller auth.Identity) (string, error) {
	switch h.channel {
	case ChannelStatus:
		return broker.StatusChannel, nil

	case ChannelMission:
		var request dto.MissionTokenRequest
		missionID, err := decodeID(r, &request, func() string { return request.MissionID })
		if err != nil {
			return "", fmt.Errorf("%w: missionId must be a UUID", errBadRequest)
		}
		if err := h.checkMissionAccess(r, caller, missionID); err != nil {
			return "", err
		}
		return broker.MissionChannel(missionID), nil

	case ChannelDriver:
		var request dto.DriverTokenRequest
		driverID, err := decodeID(r, &request, func() string { return request.DriverID })
		if err != nil {
			return "", fmt.Errorf("%w: driverId must be a UUID", errBadRequest)
		}
		// водитель слушает только свой канал, диспетчер - любой
		if driverID != caller.UserID && !caller.Role.CanManageMissions() {
			return "", fmt.Errorf("driver channel %s: %w", driverID, mission.ErrForbidden)
		}
		return broker.DriverChannel(driverID), nil
	}

	return "", fmt.Errorf("unknown channel kind %d", h.channel)
}

func (h *Handler) checkMissionAccess(r *http.Request, caller auth.Identity, missionID uuid.UUID) error {
	var err error
	switch caller.Role {
	case entities.RoleAdmin:
		return nil
	case entities.RoleDispatcher:
		_, err = h.missions.GetOwned(r.Context(), caller.UserID, missionID)
	default:
		_, err = h.missions.GetAssigned(r.Context(), caller.UserID, missionID)
	}
	return err
}

func decodeID(r *http.Request, request any, raw func() string) (uuid.UUID, error) {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(raw())
}
