// internal/handler/record_handler.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/autoshop-backend/internal/model"
	"github.com/unclebandit/autoshop-backend/internal/repository"
	"github.com/unclebandit/autoshop-backend/internal/response"
	"github.com/unclebandit/autoshop-backend/internal/service"
)

// RecordHandler holds the dependencies for the admin and listing endpoints
type RecordHandler struct {
	Auth            *service.AuthService
	AppointmentRepo repository.AppointmentRepositoryInterface
	SpareRepo       repository.SpareRepositoryInterface
	FeedbackRepo    repository.FeedbackRepositoryInterface
	ContactRepo     repository.ContactRepositoryInterface
	CustomerRepo    repository.CustomerRecordRepositoryInterface
	Logger          *slog.Logger
}

func (h *RecordHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, nil)
}

// Login is a stateless credential check
func (h *RecordHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username model.Text `json:"username"`
		Password model.Text `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Auth.Login(payload.Username.String(), payload.Password.String()); err != nil {
		h.Logger.Warn("admin login rejected", "username", payload.Username.String())
		response.FromError(w, h.Logger, err)
		return
	}

	h.Logger.Info("admin login", "username", payload.Username.String())
	response.OK(w, nil)
}

func (h *RecordHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	records, err := h.FeedbackRepo.ListAll(r.Context())
	if err != nil {
		response.FromError(w, h.Logger, err)
		return
	}
	response.OK(w, map[string]any{"records": records})
}

func (h *RecordHandler) ListCustomerRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.CustomerRepo.ListAll(r.Context())
	if err != nil {
		response.FromError(w, h.Logger, err)
		return
	}
	response.OK(w, map[string]any{"records": records})
}

func (h *RecordHandler) DeleteCustomerRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.CustomerRepo.Delete(r.Context(), id); err != nil {
		response.FromError(w, h.Logger, err)
		return
	}

	h.Logger.Info("customer record deleted", "id", id)
	response.OK(w, nil)
}

func (h *RecordHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	records, err := h.AppointmentRepo.ListAll(r.Context())
	if err != nil {
		response.FromError(w, h.Logger, err)
		return
	}
	response.OK(w, map[string]any{"records": records})
}

func (h *RecordHandler) ListSpareRequests(w http.ResponseWriter, r *http.Request) {
	records, err := h.SpareRepo.ListAll(r.Context())
	if err != nil {
		response.FromError(w, h.Logger, err)
		return
	}
	response.OK(w, map[string]any{"records": records})
}

func (h *RecordHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	records, err := h.ContactRepo.ListAll(r.Context())
	if err != nil {
		response.FromError(w, h.Logger, err)
		return
	}
	response.OK(w, map[string]any{"records": records})
}
