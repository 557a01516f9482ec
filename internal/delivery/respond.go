package delivery

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/domain"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusOf maps domain sentinels onto HTTP codes; anything unknown is a 500.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrSessionInvalid),
		errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrChannelNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers {"error": ...}. Server-side failures are logged with
// the request line and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, log *logger.ZapLogger, msg string, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		log.Log(logger.LogEntry{
			Level:   "error",
			Message: msg,
			Fields: map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
			},
			Error: err,
		})
		if errors.Is(err, domain.ErrPlatformUnavailable) {
			msg = "YouTube API key not configured"
		}
		writeJSON(w, status, map[string]string{"error": msg})
		return
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return invalidBody(err)
	}
	return nil
}

func invalidBody(err error) error {
	return fmt.Errorf("%w: invalid json: %v", domain.ErrValidation, err)
}
