// internal/service/submission_service.go
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/unclebandit/autoshop-backend/internal/model"
	"github.com/unclebandit/autoshop-backend/internal/queue"
	"github.com/unclebandit/autoshop-backend/internal/repository"
)

type SubmissionService struct {
	AppointmentRepo repository.AppointmentRepositoryInterface
	SpareRepo       repository.SpareRepositoryInterface
	FeedbackRepo    repository.FeedbackRepositoryInterface
	ContactRepo     repository.ContactRepositoryInterface
	CustomerRepo    repository.CustomerRecordRepositoryInterface
	Queue           queue.Queue
	AdminPhone      string
	Logger          *slog.Logger

	// Now is swapped out in tests
	Now func() time.Time
}

func (s *SubmissionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateAppointment stores the appointment and its customer record, then
// queues a best-effort SMS.
func (s *SubmissionService) CreateAppointment(ctx context.Context, in model.AppointmentInput) (*model.Appointment, error) {
	a, err := model.NewAppointment(in, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.AppointmentRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	if err := s.CustomerRepo.Create(ctx, a.CustomerRecord()); err != nil {
		return nil, err
	}

	s.notify(a.Phone, RenderTemplate(AppointmentSMSTemplate, map[string]string{
		"name":    a.Name,
		"vehicle": a.Vehicle,
		"issue":   a.Issue,
	}))
	return a, nil
}

// CreateSpareRequest stores the request and its customer record, then
// queues a best-effort SMS.
func (s *SubmissionService) CreateSpareRequest(ctx context.Context, in model.SpareInput) (*model.SpareRequest, error) {
	sr, err := model.NewSpareRequest(in, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.SpareRepo.Create(ctx, sr); err != nil {
		return nil, err
	}
	if err := s.CustomerRepo.Create(ctx, sr.CustomerRecord()); err != nil {
		return nil, err
	}

	s.notify(sr.Phone, RenderTemplate(SpareSMSTemplate, map[string]string{
		"name":    sr.Name,
		"details": sr.Details,
	}))
	return sr, nil
}

func (s *SubmissionService) CreateFeedback(ctx context.Context, in model.FeedbackInput) (*model.Feedback, error) {
	f, err := model.NewFeedback(in, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.FeedbackRepo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *SubmissionService) CreateContact(ctx context.Context, in model.ContactInput) (*model.Contact, error) {
	c, err := model.NewContact(in, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.ContactRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// notify never fails the caller; a missing queue or publish error is only logged
func (s *SubmissionService) notify(customerPhone, body string) {
	if s.Queue == nil {
		return
	}
	job := queue.NotificationJob{
		CustomerPhone: customerPhone,
		AdminPhone:    s.AdminPhone,
		Body:          body,
	}
	if err := s.Queue.Publish(queue.TopicNotifications, job); err != nil {
		s.Logger.Warn("failed to queue notification", "error", err)
	}
}
