package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/autoshop-backend/internal/errors"
	"github.com/unclebandit/autoshop-backend/internal/logging"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestOK(t *testing.T) {
	w := httptest.NewRecorder()
	OK(w, map[string]any{"records": []string{}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	body := decode(t, w)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, []any{}, body["records"])
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", appErrors.NewValidation("", "name"), http.StatusBadRequest, "missing required fields: name"},
		{"unauthorized", appErrors.ErrUnauthorized, http.StatusUnauthorized, "invalid username or password"},
		{"not found", appErrors.NewRecordNotFound("customer-records", "x"), http.StatusNotFound, "record not found"},
		{"storage", errors.New("write customer-records: disk full"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			FromError(w, logging.Discard(), tt.err)

			assert.Equal(t, tt.status, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["ok"])
			assert.Equal(t, tt.message, body["message"])
		})
	}
}
