package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

const TopicNotifications = "sms_notifications"

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue runs each published job on its own goroutine. Jobs are not
// retried; failures and panics are logged and dropped.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
	wg       sync.WaitGroup
	logger   *slog.Logger
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue(logger *slog.Logger) *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
		logger:   logger.With("component", "queue"),
	}
}

// Publish hands payload to every subscriber of topic without waiting
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		q.wg.Add(1)
		go q.processJob(topic, handler, payload)
	}

	return nil
}

func (q *InMemoryQueue) processJob(topic string, handler func(payload any) error, payload any) {
	defer q.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			q.logger.Warn("job panicked", "topic", topic, "panic", r)
		}
	}()

	if err := handler(payload); err != nil {
		q.logger.Warn("job failed", "topic", topic, "error", err)
		return
	}
	q.logger.Debug("job processed", "topic", topic)
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// Drain blocks until every published job has finished or ctx is done
func (q *InMemoryQueue) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NotificationJob asks for an SMS to the customer and a copy to the admin
type NotificationJob struct {
	CustomerPhone string
	AdminPhone    string
	Body          string
}

type Notifier interface {
	NotifyBoth(ctx context.Context, customerPhone, adminPhone, body string) error
}

// StartNotificationSubscriber wires notification jobs to the dispatcher.
// The job context is detached from any request.
func StartNotificationSubscriber(q Queue, n Notifier) error {
	return q.Subscribe(TopicNotifications, func(payload any) error {
		job, ok := payload.(NotificationJob)
		if !ok {
			return fmt.Errorf("invalid payload type %T, expected NotificationJob", payload)
		}
		return n.NotifyBoth(context.Background(), job.CustomerPhone, job.AdminPhone, job.Body)
	})
}
