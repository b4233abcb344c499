package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"funfans/pkg/config"
	"funfans/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	SaleQueueName  = "sale_events"
	SaleExchange   = "ledger"
	saleRoutingKey = "sale"
)

// SaleEvent is published after a purchase commits, so creators can be
// notified of new sales without blocking the purchase path.
type SaleEvent struct {
	CreatorID      string    `json:"creator_id"`
	BuyerID        string    `json:"buyer_id"`
	ContentItemID  string    `json:"content_item_id"`
	Title          string    `json:"title"`
	AmountReceived float64   `json:"amount_received"`
	OriginalPrice  float64   `json:"original_price"`
	OccurredAt     time.Time `json:"occurred_at"`
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
		SaleExchange, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		SaleQueueName, // name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(SaleQueueName, saleRoutingKey, SaleExchange, false, nil)
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

func (c *Client) PublishSaleEvent(event SaleEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal sale event: %w", err)
	}

	err = c.channel.Publish(
		SaleExchange,   // exchange
		saleRoutingKey, // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		c.logger.Error("Failed to publish sale event for item %s: %v", event.ContentItemID, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// ConsumeSaleEvents delivers committed sales to a handler. A handler error
// nacks and requeues the message; malformed payloads are dropped.
func (c *Client) ConsumeSaleEvents(handler func(event SaleEvent) error) error {
	msgs, err := c.channel.Consume(
		SaleQueueName, // queue
		"",            // consumer
		false,         // auto-ack
		false,         // exclusive
		false,         // no-local
		false,         // no-wait
		nil,           // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			var event SaleEvent
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				c.logger.Error("Failed to unmarshal sale event: %v", err)
				msg.Nack(false, false)
				continue
			}

			if err := handler(event); err != nil {
				c.logger.Error("Sale event handler failed: %v", err)
				msg.Nack(false, true)
				continue
			}

			msg.Ack(false)
		}
	}()

	return nil
}
