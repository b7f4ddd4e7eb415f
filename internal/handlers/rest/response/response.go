package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/service/mission"
	"dispatch/pkg/logger"
)

type errorLogger interface {
	With(fields ...logger.Field) logger.Logger
}

func JSON(log errorLogger, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func Error(log errorLogger, w http.ResponseWriter, status int, message string) {
	JSON(log, w, status, dto.Error{
		Error:   http.StatusText(status),
		Message: message,
	})
}

// MissionStatus переводит класс ошибки сервиса миссий в HTTP статус.
func MissionStatus(err error) int {
	switch {
	case errors.Is(err, mission.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, mission.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, mission.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, mission.ErrInvalidTransition):
		return http.StatusConflict
	default:
		// ErrConflict (гонка или исчерпанные попытки) тоже сюда: клиент ничего не может исправить
		return http.StatusInternalServerError
	}
}

// MissionError пишет ответ по ошибке сервиса миссий. Внутренние ошибки логируются,
// а клиенту уходит только текст статуса.
func MissionError(log errorLogger, w http.ResponseWriter, err error) {
	status := MissionStatus(err)
	if status == http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
		).Error("mission operation failed")
		Error(log, w, status, "")
		return
	}
	Error(log, w, status, err.Error())
}
