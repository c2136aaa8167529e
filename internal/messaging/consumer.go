package messaging

import (
	"context"
	"fmt"

	"naija-aroma/internal/logger"
)

// HandlerFunc processes one delivery. Returning nil acknowledges the
// message; returning an error rejects it without requeueing, so a
// malformed payload cannot loop forever.
type HandlerFunc func(ctx context.Context, body []byte) error

// Consumer consumes the notifications queue.
type Consumer struct {
	conn   *Connection
	logger *logger.Logger
}

// NewConsumer creates a consumer over an established connection.
func NewConsumer(conn *Connection, log *logger.Logger) *Consumer {
	return &Consumer{conn: conn, logger: log}
}

// StartConsuming delivers queue messages to handler until ctx is done.
func (c *Consumer) StartConsuming(ctx context.Context, handler HandlerFunc) error {
	if err := c.conn.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	deliveries, err := c.conn.channel.ConsumeWithContext(ctx,
		notificationsQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming %s: %w", notificationsQueue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}

			if err := handler(ctx, delivery.Body); err != nil {
				c.logger.Error("message_rejected", "", "Handler rejected message", err, nil)
				_ = delivery.Nack(false, false)
				continue
			}
			_ = delivery.Ack(false)
		}
	}
}
