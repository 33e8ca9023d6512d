package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"vibe-coding-tools/pkg/config"
	"vibe-coding-tools/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	LikeEventQueueName  = "tool_like_events"
	LikeEventExchange   = "tool-events"
	LikeEventRoutingKey = "tool.like_toggled"
)

// LikeEvent is published after a toggle transaction commits. Consumers are
// best-effort; the counter in the database stays authoritative.
type LikeEvent struct {
	UserID     string    `json:"user_id"`
	ToolID     string    `json:"tool_id"`
	Liked      bool      `json:"liked"`
	LikeCount  int       `json:"like_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		LikeEventExchange, // name
		"direct",          // type
		true,              // durable
		false,             // auto-deleted
		false,             // internal
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		LikeEventQueueName, // name
		true,               // durable
		false,              // delete when unused
		false,              // exclusive
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		LikeEventQueueName,
		LikeEventRoutingKey,
		LikeEventExchange,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishLikeEvent publishes a like-toggle event to the events exchange.
func (c *Client) PublishLikeEvent(event LikeEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = c.channel.Publish(
		LikeEventExchange,
		LikeEventRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish like event for tool=%s: %v", event.ToolID, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// ConsumeLikeEvents registers a handler for like-toggle events.
func (c *Client) ConsumeLikeEvents(handler func(event LikeEvent) error) error {
	msgs, err := c.channel.Consume(
		LikeEventQueueName, // queue
		"",                 // consumer
		false,              // auto-ack
		false,              // exclusive
		false,              // no-local
		false,              // no-wait
		nil,                // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from queue: %s", LikeEventQueueName)

	go func() {
		for msg := range msgs {
			var event LikeEvent
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				c.logger.Error("[RABBITMQ] Failed to unmarshal like event: %v, body=%s", err, string(msg.Body))
				msg.Nack(false, false)
				continue
			}

			if err := handler(event); err != nil {
				c.logger.Error("[RABBITMQ] Handler failed to process like event: %v", err)
				msg.Nack(false, true)
				continue
			}

			msg.Ack(false)
		}
	}()

	return nil
}
