package messaging

import (
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"naija-aroma/internal/config"
	"naija-aroma/internal/logger"
)

const (
	ordersExchange        = "orders_topic"
	notificationsExchange = "notifications_fanout"
	notificationsQueue    = "notifications_queue"
)

// Connection wraps a RabbitMQ connection and channel with the declared
// topology.
type Connection struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	logger  *logger.Logger
	url     string
}

// New establishes a RabbitMQ connection with retries and sets up the
// exchange/queue topology.
func New(cfg *config.Config, log *logger.Logger) (*Connection, error) {
	c := &Connection{
		logger: log,
		url:    cfg.RabbitMQURL(),
	}
	if err := c.connect(); err != nil {
		return nil, fmt.Errorf("failed to establish initial connection: %w", err)
	}
	return c, nil
}

func (c *Connection) connect() error {
	maxRetries := 5
	var err error

	for i := 0; i < maxRetries; i++ {
		c.conn, err = amqp091.Dial(c.url)
		if err == nil {
			c.channel, err = c.conn.Channel()
			if err == nil {
				if setupErr := c.setupTopology(); setupErr != nil {
					c.Close()
					err = setupErr
				} else {
					return nil
				}
			} else {
				c.conn.Close()
			}
		}

		if i < maxRetries-1 {
			wait := time.Duration(i+1) * 2 * time.Second
			c.logger.Warn("rabbitmq_connection_retry", "startup",
				fmt.Sprintf("Failed to connect to RabbitMQ, retrying in %v", wait),
				map[string]interface{}{"attempt": i + 1, "error": err.Error()})
			time.Sleep(wait)
		}
	}

	return fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", maxRetries, err)
}

// setupTopology declares the topic exchange carrying domain events and
// the fanout exchange feeding the notification queue.
func (c *Connection) setupTopology() error {
	err := c.channel.ExchangeDeclare(ordersExchange, "topic", true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare %s exchange: %w", ordersExchange, err)
	}

	err = c.channel.ExchangeDeclare(notificationsExchange, "fanout", true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare %s exchange: %w", notificationsExchange, err)
	}

	_, err = c.channel.QueueDeclare(notificationsQueue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", notificationsQueue, err)
	}

	err = c.channel.QueueBind(notificationsQueue, "", notificationsExchange, false, nil)
	if err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", notificationsQueue, err)
	}

	return nil
}

// Close closes the channel and connection.
func (c *Connection) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
