package auth

import (
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/auth"
	"dispatch/pkg/logger"
)

const (
	unauthorizedBody = `{"error":"Unauthorized","message":"Missing or invalid access token."}`
	forbiddenBody    = `{"error":"Forbidden","message":"Role is not allowed to use this endpoint."}`
)

// Middleware проверяет Bearer токен и кладет Identity в контекст запроса.
func Middleware(log handlerLogger, verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := auth.BearerToken(r.Header.Get("Authorization"))
			if err == nil {
				var identity auth.Identity
				identity, err = verifier.Verify(raw)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
					return
				}
			}

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("remote_addr", r.RemoteAddr),
				logger.NewField("error", err),
			).Warn("request rejected by auth")

			w.Header().Set("WWW-Authenticate", "Bearer")
			writeJSON(log, w, http.StatusUnauthorized, unauthorizedBody)
		})
	}
}

// RequireRole пропускает только вызывающих, чья роль удовлетворяет allowed.
// Должен стоять после Middleware.
func RequireRole(log handlerLogger, allowed func(entities.UserRole) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := auth.FromContext(r.Context())
			if !ok {
				writeJSON(log, w, http.StatusUnauthorized, unauthorizedBody)
				return
			}
			if !allowed(identity.Role) {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("user", identity.UserID.String()),
					logger.NewField("role", identity.Role.String()),
				).Warn("role is not allowed")
				writeJSON(log, w, http.StatusForbidden, forbiddenBody)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeJSON(log handlerLogger, w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write([]byte(body)); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("failed to write auth response")
	}
}
