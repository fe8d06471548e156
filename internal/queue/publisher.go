// Package queue publishes domain events to RabbitMQ. Publishing is best
// effort: callers log failures and carry on.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"clubsphere/internal/logger"
)

const (
	TopicPaymentReconciled = "payment.reconciled"
	TopicClubStatusChanged = "club.status_changed"
)

type PaymentReconciled struct {
	Type            string    `json:"type"`
	UserEmail       string    `json:"userEmail"`
	ClubID          string    `json:"clubId"`
	EventID         string    `json:"eventId,omitempty"`
	Amount          float64   `json:"amount"`
	TransactionID   string    `json:"transactionId"`
	PaymentIntentID string    `json:"paymentIntentId"`
	ReconciledAt    time.Time `json:"reconciledAt"`
}

type ClubStatusChanged struct {
	ClubID       string    `json:"clubId"`
	ClubName     string    `json:"clubName"`
	ManagerEmail string    `json:"managerEmail"`
	Status       string    `json:"status"`
	ChangedAt    time.Time `json:"changedAt"`
}

type Publisher interface {
	Publish(ctx context.Context, topic string, event interface{}) error
}

// Nop discards events. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, interface{}) error { return nil }

type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes each event as a persistent JSON message to a
// durable queue named after the topic, via the default exchange.
type AMQPPublisher struct {
	conn *amqp.Connection
	open func() (channel, error)
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	p := &AMQPPublisher{conn: conn}
	p.open = func() (channel, error) { return conn.Channel() }
	return p, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, topic string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", topic, err)
	}

	// amqp channels are not safe for concurrent use, so each publish gets its own.
	ch, err := p.open()
	if err != nil {
		return fmt.Errorf("rabbitmq channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(topic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", topic, false, false, pub); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}

	logger.Debug("domain event published", "topic", topic)
	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
