package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"statement-analyzer/internal/models"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// AMQPPublisher publishes ledger events to a direct exchange
type AMQPPublisher struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
}

// NewAMQPPublisher dials url and declares the exchange, the queue and their
// binding. The queue name doubles as the routing key.
func NewAMQPPublisher(url, exchangeName, queueName string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	publisher := &AMQPPublisher{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := publisher.setup(); err != nil {
		publisher.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return publisher, nil
}

func (p *AMQPPublisher) setup() error {
	if err := p.channel.ExchangeDeclare(
		p.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := p.channel.QueueDeclare(
		p.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := p.channel.QueueBind(
		p.queueName,
		p.queueName,
		p.exchangeName,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// PublishLedgerIngested publishes a persistent ledger.ingested message
func (p *AMQPPublisher) PublishLedgerIngested(ctx context.Context, event *models.LedgerIngestedEvent) error {
	body, err := NewLedgerIngestedMessage(event).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName,
		p.queueName,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			Type:         MessageTypeLedgerIngested,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	slog.InfoContext(ctx, "Published ledger ingested message",
		"session_id", event.SessionID,
		"rows", event.RowCount,
		"exchange", p.exchangeName,
		"queue", p.queueName)

	return nil
}

// Close closes the channel and the connection
func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that does nothing
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) PublishLedgerIngested(ctx context.Context, event *models.LedgerIngestedEvent) error {
	slog.DebugContext(ctx, "Skipping ledger ingested event, no broker configured", "session_id", event.SessionID)
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
