// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/unclebandit/autoshop-backend/internal/app"
	"github.com/unclebandit/autoshop-backend/internal/config"
	"github.com/unclebandit/autoshop-backend/internal/logging"
	"github.com/unclebandit/autoshop-backend/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, logFile, err := logging.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer a.Close()

	if !cfg.SMSConfigured() {
		logger.Warn("SMS credentials not set, notifications are disabled")
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.New(router.Options{
			Submissions:    a.SubmissionController,
			Records:        a.RecordHandler,
			StaticDir:      cfg.StaticDir,
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Logger:         logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server running on %s (store=%s, sms=%s)", cfg.Addr(), cfg.StoreDriver, cfg.SMSTransport)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", "error", err)
	}
	if err := a.Queue.Drain(shutdownCtx); err != nil {
		logger.Warn("pending notifications dropped", "error", err)
	}
}
