package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/streadway/amqp"

	"github.com/unclebandit/autoshop-backend/internal/config"
	"github.com/unclebandit/autoshop-backend/internal/logging"
	"github.com/unclebandit/autoshop-backend/internal/notify"
)

// The worker drains the SMS queue filled by the API server when
// SMS_TRANSPORT=amqp and delivers each message through Twilio.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}
	if !cfg.SMSConfigured() {
		log.Fatal("TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_FROM_NUMBER are required")
	}

	logger, logFile, err := logging.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatal("failed to open log file:", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// Connect to RabbitMQ
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ:", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("Failed to open a channel:", err)
	}
	defer ch.Close()

	q, err := notify.DeclareQueue(ch, cfg.SMSQueue)
	if err != nil {
		log.Fatal("Failed to declare queue:", err)
	}

	if err := ch.Qos(8, 0, false); err != nil {
		log.Fatal("Failed to set QoS:", err)
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // autoAck = false, Consumer acks each delivery
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatal("Failed to register consumer:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := &notify.Consumer{
		Provider: notify.NewTwilioProvider(cfg.TwilioAccountSID, cfg.TwilioAuthToken),
		Logger:   logger.With("component", "worker"),
	}

	log.Printf("📨 Worker consuming %s", q.Name)
	consumer.Run(ctx, msgs)
	log.Println("Worker stopped")
}
