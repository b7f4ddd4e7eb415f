package connection_token_post

import (
	"net/http"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/handlers/rest/response"
	"dispatch/internal/pkg/auth"
	"dispatch/pkg/logger"
)

type Handler struct {
	log    handlerLogger
	issuer Issuer
}

func New(log handlerLogger, issuer Issuer) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:    handlerLog,
		issuer: issuer,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	token, err := h.issuer.IssueConnectionToken(caller.UserID.String(), map[string]any{
		"role": caller.Role.String(),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("user", caller.UserID.String()),
		).Error("issue connection token")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response.JSON(h.log, w, http.StatusOK, dto.ConnectionTokenResponse{ConnectionToken: token})
}
