package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/unclebandit/autoshop-backend/internal/config"
	"github.com/unclebandit/autoshop-backend/internal/controller"
	"github.com/unclebandit/autoshop-backend/internal/db"
	"github.com/unclebandit/autoshop-backend/internal/handler"
	"github.com/unclebandit/autoshop-backend/internal/notify"
	"github.com/unclebandit/autoshop-backend/internal/queue"
	"github.com/unclebandit/autoshop-backend/internal/repository"
	"github.com/unclebandit/autoshop-backend/internal/service"
	"github.com/unclebandit/autoshop-backend/internal/store"
)

// App holds everything cmd/server needs to serve requests
type App struct {
	Config  config.Config
	Backend store.Backend
	Queue   *queue.InMemoryQueue

	SubmissionController *controller.SubmissionController
	RecordHandler        *handler.RecordHandler

	closers []io.Closer
}

// OpenBackend picks the JSON-file or Postgres store from cfg.
// The returned *sql.DB is nil for the file store.
func OpenBackend(ctx context.Context, cfg config.Config) (store.Backend, *sql.DB, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		backend, err := store.NewPostgresBackend(ctx, conn)
		if err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("create collections table: %w", err)
		}
		return backend, conn, nil
	default:
		backend, err := store.NewFileBackend(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return backend, nil, nil
	}
}

// NewProvider returns the SMS provider for the configured transport, or nil
// when credentials are missing (the dispatcher then skips every send).
func NewProvider(cfg config.Config) (notify.Provider, io.Closer, error) {
	if !cfg.SMSConfigured() {
		return nil, nil, nil
	}
	if cfg.SMSTransport == config.TransportAMQP {
		p, err := notify.NewAMQPPublisher(cfg.AMQPURL, cfg.SMSQueue)
		if err != nil {
			return nil, nil, err
		}
		return p, p, nil
	}
	return notify.NewTwilioProvider(cfg.TwilioAccountSID, cfg.TwilioAuthToken), nil, nil
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	a := &App{Config: cfg}

	backend, conn, err := OpenBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if conn != nil {
		a.closers = append(a.closers, conn)
	}
	a.Backend = backend

	provider, closer, err := NewProvider(cfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("sms provider: %w", err)
	}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}

	dispatcher := notify.NewDispatcher(notify.Config{
		AccountSID:         cfg.TwilioAccountSID,
		AuthToken:          cfg.TwilioAuthToken,
		FromNumber:         cfg.TwilioFromNumber,
		DefaultCountryCode: cfg.DefaultCountryCode,
	}, provider, logger)

	a.Queue = queue.NewInMemoryQueue(logger)
	if err := queue.StartNotificationSubscriber(a.Queue, dispatcher); err != nil {
		a.Close()
		return nil, err
	}

	appointmentRepo := repository.NewAppointmentRepository(backend)
	spareRepo := repository.NewSpareRepository(backend)
	feedbackRepo := repository.NewFeedbackRepository(backend)
	contactRepo := repository.NewContactRepository(backend)
	customerRepo := repository.NewCustomerRecordRepository(backend)

	submissionService := &service.SubmissionService{
		AppointmentRepo: appointmentRepo,
		SpareRepo:       spareRepo,
		FeedbackRepo:    feedbackRepo,
		ContactRepo:     contactRepo,
		CustomerRepo:    customerRepo,
		Queue:           a.Queue,
		AdminPhone:      cfg.AdminPhone,
		Logger:          logger,
	}

	a.SubmissionController = &controller.SubmissionController{
		SubmissionService: submissionService,
		Logger:            logger,
	}
	a.RecordHandler = &handler.RecordHandler{
		Auth:            &service.AuthService{Username: cfg.AdminUsername, Password: cfg.AdminPassword},
		AppointmentRepo: appointmentRepo,
		SpareRepo:       spareRepo,
		FeedbackRepo:    feedbackRepo,
		ContactRepo:     contactRepo,
		CustomerRepo:    customerRepo,
		Logger:          logger,
	}

	return a, nil
}

func (a *App) Close() (err error) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if closeErr := a.closers[i].Close(); closeErr != nil {
			err = closeErr
		}
	}
	return err
}
