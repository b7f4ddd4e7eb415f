package ping_get

import (
	"net/http"
	"time"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/handlers/rest/response"
)

type Handler struct {
	log handlerLogger
	now func() time.Time
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(),
		now: time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	response.JSON(h.log, w, http.StatusOK, dto.Ping{
		Message:    "pong",
		ServerTime: h.now().UnixMilli(),
	})
}
