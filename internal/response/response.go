// Package response writes the {ok, ...} JSON envelope used by every API route.
package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	appErrors "github.com/unclebandit/autoshop-backend/internal/errors"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// OK writes {ok:true} merged with extra fields.
func OK(w http.ResponseWriter, extra map[string]any) {
	body := map[string]any{"ok": true}
	for k, v := range extra {
		body[k] = v
	}
	JSON(w, http.StatusOK, body)
}

// Error writes {ok:false, message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]any{"ok": false, "message": message})
}

// FromError maps application errors to statuses. Unknown errors are logged
// and reported as a generic 500.
func FromError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var nf *appErrors.ErrRecordNotFound

	switch {
	case appErrors.IsValidation(err):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, appErrors.ErrUnauthorized):
		Error(w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &nf):
		Error(w, http.StatusNotFound, "record not found")
	default:
		logger.Error("request failed", "error", err)
		Error(w, http.StatusInternalServerError, "internal server error")
	}
}
