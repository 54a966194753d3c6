package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

const (
	NotificationEventExchange = "notification_events"
	ModerationEventExchange   = "moderation_events"
	NotificationEventQueue    = "notification_event_queue"
	ModerationEventQueue      = "moderation_event_queue"
)

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	producer := &Producer{
		conn:    conn,
		channel: ch,
	}

	// 声明exchanges和queues
	if err := producer.setupTopology(); err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}

	return producer, nil
}

func (p *Producer) setupTopology() error {
	exchanges := []string{NotificationEventExchange, ModerationEventExchange}
	for _, exchange := range exchanges {
		err := p.channel.ExchangeDeclare(
			exchange,
			"direct",
			true,  // durable
			false, // auto-delete
			false, // internal
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
		}
	}

	queues := map[string]string{
		NotificationEventQueue: NotificationEventExchange,
		ModerationEventQueue:   ModerationEventExchange,
	}
	for queue, exchange := range queues {
		_, err := p.channel.QueueDeclare(
			queue,
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}
		if err := p.channel.QueueBind(queue, "", exchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue %s: %w", queue, err)
		}
	}

	return nil
}

func (p *Producer) publish(ctx context.Context, exchange string, body []byte) error {
	return p.channel.PublishWithContext(
		ctx,
		exchange,
		"",
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

func (p *Producer) PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}
	if err := p.publish(ctx, NotificationEventExchange, body); err != nil {
		return fmt.Errorf("failed to publish notification event: %w", err)
	}
	hlog.CtxInfof(ctx, "Published notification event: %+v", event)
	return nil
}

func (p *Producer) PublishModerationEvent(ctx context.Context, event *ModerationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal moderation event: %w", err)
	}
	if err := p.publish(ctx, ModerationEventExchange, body); err != nil {
		return fmt.Errorf("failed to publish moderation event: %w", err)
	}
	hlog.CtxInfof(ctx, "Published moderation event: %+v", event)
	return nil
}

func (p *Producer) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
