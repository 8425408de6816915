// internal/controller/submission_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	appErrors "github.com/unclebandit/autoshop-backend/internal/errors"
	"github.com/unclebandit/autoshop-backend/internal/model"
	"github.com/unclebandit/autoshop-backend/internal/response"
	"github.com/unclebandit/autoshop-backend/internal/service"
)

// SubmissionController serves the customer-facing form endpoints
type SubmissionController struct {
	SubmissionService *service.SubmissionService
	Logger            *slog.Logger
}

// decodeBody turns a wrongly typed field into a validation error naming it.
// Anything else that fails to decode is reported as an invalid body.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return appErrors.NewValidation(fmt.Sprintf("invalid value for field %s", typeErr.Field), typeErr.Field)
	}
	return appErrors.NewValidation("invalid request body")
}

func (c *SubmissionController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var body model.AppointmentInput
	if err := decodeBody(r, &body); err != nil {
		response.FromError(w, c.Logger, err)
		return
	}

	a, err := c.SubmissionService.CreateAppointment(r.Context(), body)
	if err != nil {
		response.FromError(w, c.Logger, err)
		return
	}

	c.Logger.Info("appointment created", "id", a.ID)
	response.OK(w, map[string]any{"record": a})
}

func (c *SubmissionController) CreateSpareRequest(w http.ResponseWriter, r *http.Request) {
	var body model.SpareInput
	if err := decodeBody(r, &body); err != nil {
		response.FromError(w, c.Logger, err)
		return
	}

	sr, err := c.SubmissionService.CreateSpareRequest(r.Context(), body)
	if err != nil {
		response.FromError(w, c.Logger, err)
		return
	}

	c.Logger.Info("spare parts request created", "id", sr.ID, "parts", len(sr.Parts))
	response.OK(w, map[string]any{"record": sr})
}

func (c *SubmissionController) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var body model.FeedbackInput
	if err := decodeBody(r, &body); err != nil {
		response.FromError(w, c.Logger, err)
		return
	}

	f, err := c.SubmissionService.CreateFeedback(r.Context(), body)
	if err != nil {
		response.FromError(w, c.Logger, err)
		return
	}

	response.OK(w, map[string]any{"record": f})
}

func (c *SubmissionController) CreateContact(w http.ResponseWriter, r *http.Request) {
	var body model.ContactInput
	if err := decodeBody(r, &body); err != nil {
		response.FromError(w, c.Logger, err)
		return
	}

	if _, err := c.SubmissionService.CreateContact(r.Context(), body); err != nil {
		response.FromError(w, c.Logger, err)
		return
	}

	response.OK(w, nil)
}
