package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventCustomerCreated = "customer.created"
	EventCustomerUpdated = "customer.updated"
	EventCustomerDeleted = "customer.deleted"
)

// CustomerEvent is the lifecycle notification consumed by the other services
// of the platform (orders, logistics).
type CustomerEvent struct {
	Event      string    `json:"event"`
	Code       int64     `json:"code"`
	Name       string    `json:"name"`
	CPF        string    `json:"cpf"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishCustomerEvent(ctx context.Context, event CustomerEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding customer event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publishing customer event: %w", err)
	}

	return nil
}
