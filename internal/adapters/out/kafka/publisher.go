// Package kafka publishes order lifecycle events to a Kafka topic for the
// notification collaborator.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

var _ ports.EventPublisher = &Publisher{}

// eventMessage is the wire format of one order event.
type eventMessage struct {
	Event       string    `json:"event"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Publisher writes order events to a single topic. Messages are keyed by
// order ID so one order's events stay in a single partition, in order.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish sends the given events. An empty slice is a no-op.
func (p *Publisher) Publish(ctx context.Context, events []order.Event) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(eventMessage{
			Event:       event.Name(),
			OrderID:     event.OrderID.String(),
			OrderNumber: event.OrderNumber,
			Status:      event.Status.String(),
			Description: event.Description,
			OccurredAt:  event.OccurredAt,
		})
		if err != nil {
			return err
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(event.OrderID.String()),
			Value: payload,
		})
	}

	return p.writer.WriteMessages(ctx, messages...)
}

// Close flushes pending messages and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
