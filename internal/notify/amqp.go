package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"
)

// AMQPPublisher is a Provider that queues messages on RabbitMQ for cmd/worker
type AMQPPublisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
	mu    sync.Mutex
}

// DeclareQueue declares the durable SMS queue on ch
func DeclareQueue(ch *amqp.Channel, name string) (amqp.Queue, error) {
	return ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
}

func NewAMQPPublisher(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := DeclareQueue(ch, queue); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	return &AMQPPublisher{conn: conn, ch: ch, queue: queue}, nil
}

func (p *AMQPPublisher) Send(_ context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Publish(
		"",
		p.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Consumer turns queued deliveries back into provider sends
type Consumer struct {
	Provider Provider
	Logger   *slog.Logger
}

// HandleDelivery forwards one queued message. Malformed payloads return an
// error so the caller can drop them.
func (c *Consumer) HandleDelivery(ctx context.Context, body []byte) error {
	var msg Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("invalid sms job: %w", err)
	}
	if msg.To == "" || msg.Body == "" {
		return fmt.Errorf("invalid sms job: missing to or body")
	}
	if err := c.Provider.Send(ctx, msg); err != nil {
		return err
	}
	c.Logger.Info("queued SMS delivered", "to", msg.To)
	return nil
}

// Run consumes deliveries until ctx is done or the channel closes.
// Every delivery is acked on success and nacked without requeue on failure.
func (c *Consumer) Run(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			if err := c.HandleDelivery(ctx, d.Body); err != nil {
				c.Logger.Warn("failed to deliver queued SMS", "error", err)
				d.Nack(false, false)
				continue
			}
			d.Ack(false)
		}
	}
}
