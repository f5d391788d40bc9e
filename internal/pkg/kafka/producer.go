package kafka

import (
	"Kiosque/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// EventProducer 行为事件生产者，事件投递失败只记日志不阻断业务
type EventProducer interface {
	Publish(ctx context.Context, eventType string, userId, targetId uint64)
	Close() error
}

type EventProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

func NewEventProducer(cfg *config.Config) (EventProducer, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}
	return &EventProducerImpl{
		producer: producer,
		topic:    cfg.KafkaEventConsumer.Topic,
	}, nil
}

func (s *EventProducerImpl) Publish(ctx context.Context, eventType string, userId, targetId uint64) {
	event := EngagementEvent{
		Type:       eventType,
		UserID:     userId,
		TargetID:   targetId,
		OccurredAt: time.Now(),
	}
	value, err := json.Marshal(&event)
	if err != nil {
		log.ErrorContext(ctx, "marshal engagement event error", "err", err)
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Value: sarama.ByteEncoder(value),
	}
	if _, _, err := s.producer.SendMessage(msg); err != nil {
		log.ErrorContext(ctx, "publish engagement event error", "type", eventType, "err", err)
	}
}

func (s *EventProducerImpl) Close() error {
	return s.producer.Close()
}
