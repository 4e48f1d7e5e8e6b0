package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaConfig selects the broker and topic for committed events.
type KafkaConfig struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
}

type envelope struct {
	Type        string             `json:"type"`
	AggregateID string             `json:"aggregateId"`
	OccurredAt  time.Time          `json:"occurredAt"`
	Data        kernel.DomainEvent `json:"data"`
}

// KafkaPublisher writes every event to one topic. The message key is the
// aggregate id so events of one order, item or route keep their order within a
// partition.
type KafkaPublisher struct {
	writer MessageWriter
	topic  string
}

// NewKafkaPublisher creates a synchronous writer for config.Topic.
func NewKafkaPublisher(config KafkaConfig) *KafkaPublisher {
	batchTimeout := config.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = 10 * time.Millisecond
	}

	return NewKafkaPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(config.Brokers...),
		Topic:                  config.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           batchTimeout,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		Async:                  false,
	}, config.Topic)
}

// NewKafkaPublisherWithWriter wraps an existing writer.
func NewKafkaPublisherWithWriter(writer MessageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		value, err := json.Marshal(envelope{
			Type:        event.EventName(),
			AggregateID: event.AggregateID().String(),
			OccurredAt:  event.OccurredAt(),
			Data:        event,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", event.EventName(), err)
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(event.AggregateID().String()),
			Value: value,
			Headers: []kafka.Header{
				{Key: "event-type", Value: []byte(event.EventName())},
				{Key: "content-type", Value: []byte("application/json")},
			},
			Time: event.OccurredAt(),
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("failed to publish events to topic %s: %w", p.topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
