package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	appErrors "github.com/unclebandit/autoshop-backend/internal/errors"
	"github.com/unclebandit/autoshop-backend/internal/handler"
	"github.com/unclebandit/autoshop-backend/internal/logging"
	"github.com/unclebandit/autoshop-backend/internal/model"
	"github.com/unclebandit/autoshop-backend/internal/service"
)

type MockCustomerRepo struct {
	records   []model.CustomerRecord
	listErr   error
	deletedID string
}

func (m *MockCustomerRepo) Create(context.Context, model.CustomerRecord) error { return nil }

func (m *MockCustomerRepo) ListAll(context.Context) ([]model.CustomerRecord, error) {
	return m.records, m.listErr
}

func (m *MockCustomerRepo) Delete(_ context.Context, id string) error {
	for _, r := range m.records {
		if r.ID == id {
			m.deletedID = id
			return nil
		}
	}
	return appErrors.NewRecordNotFound("customer-records", id)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestDeleteCustomerRecordHandler(t *testing.T) {
	repo := &MockCustomerRepo{records: []model.CustomerRecord{{ID: "abc"}}}
	h := &handler.RecordHandler{CustomerRepo: repo, Logger: logging.Discard()}

	req := withURLParam(httptest.NewRequest("DELETE", "/api/customer-records/abc", nil), "id", "abc")
	w := httptest.NewRecorder()
	h.DeleteCustomerRecord(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", repo.deletedID)

	req = withURLParam(httptest.NewRequest("DELETE", "/api/customer-records/zzz", nil), "id", "zzz")
	w = httptest.NewRecorder()
	h.DeleteCustomerRecord(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"ok":false,"message":"record not found"}`, w.Body.String())
}

func TestListCustomerRecordsStorageError(t *testing.T) {
	repo := &MockCustomerRepo{listErr: errors.New("parse customer-records: unexpected EOF")}
	h := &handler.RecordHandler{CustomerRepo: repo, Logger: logging.Discard()}

	w := httptest.NewRecorder()
	h.ListCustomerRecords(w, httptest.NewRequest("GET", "/api/customer-records", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"ok":false,"message":"internal server error"}`, w.Body.String())
}

func TestHealthHandler(t *testing.T) {
	h := &handler.RecordHandler{Logger: logging.Discard()}

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest("GET", "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestLoginHandler(t *testing.T) {
	h := &handler.RecordHandler{
		Auth:   &service.AuthService{Username: "admin", Password: "admin123"},
		Logger: logging.Discard(),
	}

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"username":"admin","password":"admin123"}`, http.StatusOK},
		{"wrong password", `{"username":"admin","password":"nope"}`, http.StatusUnauthorized},
		{"missing password", `{"username":"admin"}`, http.StatusBadRequest},
		{"malformed", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Login(w, httptest.NewRequest("POST", "/api/login", strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
