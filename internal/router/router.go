package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/unclebandit/autoshop-backend/internal/controller"
	"github.com/unclebandit/autoshop-backend/internal/handler"
	"github.com/unclebandit/autoshop-backend/internal/response"
)

type Options struct {
	Submissions    *controller.SubmissionController
	Records        *handler.RecordHandler
	StaticDir      string
	AllowedOrigins []string
	Logger         *slog.Logger
}

func New(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(opts.Logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", opts.Records.Health)
		r.Post("/login", opts.Records.Login)

		r.Post("/appointments", opts.Submissions.CreateAppointment)
		r.Get("/appointments", opts.Records.ListAppointments)
		r.Post("/spares", opts.Submissions.CreateSpareRequest)
		r.Get("/spares", opts.Records.ListSpareRequests)
		r.Post("/feedback", opts.Submissions.CreateFeedback)
		r.Get("/feedback", opts.Records.ListFeedback)
		r.Post("/contact", opts.Submissions.CreateContact)
		r.Get("/contact", opts.Records.ListContacts)

		r.Get("/customer-records", opts.Records.ListCustomerRecords)
		r.Delete("/customer-records/{id}", opts.Records.DeleteCustomerRecord)

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			response.Error(w, http.StatusNotFound, "route not found")
		})
	})

	if opts.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(opts.StaticDir)))
	}

	return r
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
