package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"naija-aroma/internal/logger"
)

// Publisher publishes domain events to the bus. Publishing is
// best-effort from the caller's point of view: services log failures
// and continue, an event bus outage never fails a customer request.
type Publisher struct {
	conn   *Connection
	logger *logger.Logger
}

// NewPublisher creates a publisher over an established connection.
func NewPublisher(conn *Connection, log *logger.Logger) *Publisher {
	return &Publisher{conn: conn, logger: log}
}

// Publish sends the event to the topic exchange under its type as
// routing key, and broadcasts it on the notifications fanout.
func (p *Publisher) Publish(ctx context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.OccurredAt,
		Body:         body,
	}

	if err := p.conn.channel.PublishWithContext(ctx, ordersExchange, event.Type, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish %s to %s: %w", event.Type, ordersExchange, err)
	}
	if err := p.conn.channel.PublishWithContext(ctx, notificationsExchange, "", false, false, msg); err != nil {
		return fmt.Errorf("failed to publish %s to %s: %w", event.Type, notificationsExchange, err)
	}

	p.logger.Debug("event_published", event.RequestID, "Published event", map[string]interface{}{
		"type":         event.Type,
		"order_number": event.OrderNumber,
	})
	return nil
}
