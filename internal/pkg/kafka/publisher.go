package kafka

import (
	"SocialBoard/internal/api/config"
	"SocialBoard/internal/pkg/logger"
	"context"
	"fmt"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// Publisher 投递行变更事件
type Publisher interface {
	Publish(ctx context.Context, event *ChangeEvent) error
	Close() error
}

// NewPublisher kafka 未启用时返回空实现
func NewPublisher(cfg config.KafkaConfig) (Publisher, error) {
	if !cfg.Enabled {
		return NopPublisher{}, nil
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	log.Info("Kafka producer connected", "brokers", cfg.Brokers, "topic", cfg.Topic)
	return NewSaramaPublisher(producer, cfg.Topic), nil
}

type SaramaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewSaramaPublisher(producer sarama.SyncProducer, topic string) *SaramaPublisher {
	return &SaramaPublisher{producer: producer, topic: topic}
}

func (s *SaramaPublisher) Publish(ctx context.Context, event *ChangeEvent) error {
	event.TraceID = logger.TraceIDFrom(ctx)
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode change event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(event.Key()),
		Value: sarama.ByteEncoder(value),
	}
	if event.TraceID != "" {
		msg.Headers = []sarama.RecordHeader{{Key: []byte(logger.TraceIDKey), Value: []byte(event.TraceID)}}
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send change event: %w", err)
	}
	log.DebugContext(ctx, "Change event sent",
		"table", event.Table, "type", event.Type, "partition", partition, "offset", offset)
	return nil
}

func (s *SaramaPublisher) Close() error {
	return s.producer.Close()
}

// NopPublisher 丢弃所有事件
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *ChangeEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
