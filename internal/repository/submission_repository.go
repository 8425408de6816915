package repository

import (
	"context"

	"github.com/unclebandit/autoshop-backend/internal/model"
	"github.com/unclebandit/autoshop-backend/internal/store"
)

type AppointmentRepositoryInterface interface {
	Create(ctx context.Context, a *model.Appointment) error
	ListAll(ctx context.Context) ([]model.Appointment, error)
}

type SpareRepositoryInterface interface {
	Create(ctx context.Context, s *model.SpareRequest) error
	ListAll(ctx context.Context) ([]model.SpareRequest, error)
}

type FeedbackRepositoryInterface interface {
	Create(ctx context.Context, f *model.Feedback) error
	ListAll(ctx context.Context) ([]model.Feedback, error)
}

type ContactRepositoryInterface interface {
	Create(ctx context.Context, c *model.Contact) error
	ListAll(ctx context.Context) ([]model.Contact, error)
}

// ====================== Appointments ======================

type AppointmentRepository struct {
	Store *store.Collection[model.Appointment]
}

func NewAppointmentRepository(b store.Backend) *AppointmentRepository {
	return &AppointmentRepository{Store: store.NewCollection[model.Appointment](b, store.Appointments)}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	_, err := r.Store.Append(ctx, *a)
	return err
}

func (r *AppointmentRepository) ListAll(ctx context.Context) ([]model.Appointment, error) {
	return r.Store.Load(ctx)
}

// ====================== Spare parts ======================

type SpareRepository struct {
	Store *store.Collection[model.SpareRequest]
}

func NewSpareRepository(b store.Backend) *SpareRepository {
	return &SpareRepository{Store: store.NewCollection[model.SpareRequest](b, store.Spares)}
}

func (r *SpareRepository) Create(ctx context.Context, s *model.SpareRequest) error {
	_, err := r.Store.Append(ctx, *s)
	return err
}

func (r *SpareRepository) ListAll(ctx context.Context) ([]model.SpareRequest, error) {
	return r.Store.Load(ctx)
}

// ====================== Feedback ======================

type FeedbackRepository struct {
	Store *store.Collection[model.Feedback]
}

func NewFeedbackRepository(b store.Backend) *FeedbackRepository {
	return &FeedbackRepository{Store: store.NewCollection[model.Feedback](b, store.Feedback)}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *model.Feedback) error {
	_, err := r.Store.Append(ctx, *f)
	return err
}

func (r *FeedbackRepository) ListAll(ctx context.Context) ([]model.Feedback, error) {
	return r.Store.Load(ctx)
}

// ====================== Contacts ======================

type ContactRepository struct {
	Store *store.Collection[model.Contact]
}

func NewContactRepository(b store.Backend) *ContactRepository {
	return &ContactRepository{Store: store.NewCollection[model.Contact](b, store.Contacts)}
}

func (r *ContactRepository) Create(ctx context.Context, c *model.Contact) error {
	_, err := r.Store.Append(ctx, *c)
	return err
}

func (r *ContactRepository) ListAll(ctx context.Context) ([]model.Contact, error) {
	return r.Store.Load(ctx)
}
