package notify

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/domain"
	"storefront/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
)

const publishTimeout = 5 * time.Second

// MessageWriter is the subset of *kafka.Writer the notifier needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes notifications keyed by session so one visitor's
// events stay ordered within a partition. Publishing is asynchronous and
// failures are only logged.
type KafkaNotifier struct {
	writer MessageWriter
	topic  string
}

func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		Async:                  true,
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warn().Err(err).Int("messages", len(messages)).Msg("Kafka notification delivery failed")
			}
		},
	}
	return &KafkaNotifier{writer: w, topic: topic}
}

// NewKafkaNotifierWithWriter is used with a custom or fake writer.
func NewKafkaNotifierWithWriter(w MessageWriter, topic string) *KafkaNotifier {
	return &KafkaNotifier{writer: w, topic: topic}
}

func (k *KafkaNotifier) Notify(ctx context.Context, n domain.Notification) {
	msg, err := encodeNotification(n)
	if err != nil {
		logger.WithContext(ctx).Warn().Err(err).Msg("Failed to encode notification")
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := k.writer.WriteMessages(pubCtx, msg); err != nil {
		logger.WithContext(ctx).Warn().Err(err).Str("topic", k.topic).Msg("Failed to publish notification")
	}
}

func (k *KafkaNotifier) Close() error {
	return k.writer.Close()
}

func encodeNotification(n domain.Notification) (kafka.Message, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("kafka: json.Marshal failed: %w", err)
	}
	return kafka.Message{
		Key:   []byte(n.SessionID),
		Value: data,
		Time:  n.At,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(n.Kind)},
		},
	}, nil
}
