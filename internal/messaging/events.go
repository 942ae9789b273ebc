package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// NotificationEvent is published on the notification topic after a notification is stored.
type NotificationEvent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// Publisher emits notification events to downstream consumers.
type Publisher interface {
	PublishNotification(ctx context.Context, ev NotificationEvent) error
	Close() error
}

// KafkaPublisher writes events keyed by user id so one user's events stay ordered.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *KafkaPublisher) PublishNotification(ctx context.Context, ev NotificationEvent) error {
	msg, err := eventMessage(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func eventMessage(ev NotificationEvent) (kafka.Message, error) {
	value, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(ev.UserID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(ev.Type)},
		},
	}, nil
}

// NoopPublisher drops events. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishNotification(context.Context, NotificationEvent) error { return nil }
func (NoopPublisher) Close() error                                                 { return nil }

// NewPublisher returns a Kafka publisher when brokers are configured.
func NewPublisher(brokers []string, topic string) Publisher {
	if len(brokers) == 0 {
		return NoopPublisher{}
	}
	return NewKafkaPublisher(brokers, topic)
}
