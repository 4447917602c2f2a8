package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"japantune/internal/config"
	"japantune/internal/metrics"
	"japantune/internal/model"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// AuditPublisher пишет события аудита в Kafka. Ключ сообщения - сущность и
// идентификатор, поэтому события одной записи попадают в одну партицию.
type AuditPublisher struct {
	writer MessageWriter
}

// NewAuditPublisher создает продюсер событий аудита.
func NewAuditPublisher(cfg config.KafkaConfig) *AuditPublisher {
	return &AuditPublisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.AuditTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}}
}

// Publish отправляет событие. Пустой ID заполняется новым UUID.
func (p *AuditPublisher) Publish(ctx context.Context, event model.AuditEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	value, err := json.Marshal(event)
	if err != nil {
		metrics.AuditEvents.WithLabelValues("failed").Inc()
		return fmt.Errorf("ошибка сериализации события аудита: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Entity + ":" + strconv.Itoa(event.EntityID)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "X-Event-Id", Value: []byte(event.ID)},
			{Key: "X-Action", Value: []byte(event.Action)},
		},
	})
	if err != nil {
		metrics.AuditEvents.WithLabelValues("failed").Inc()
		return fmt.Errorf("ошибка отправки события аудита: %w", err)
	}
	metrics.AuditEvents.WithLabelValues("sent").Inc()
	return nil
}

// Close закрывает продюсер.
func (p *AuditPublisher) Close() error {
	return p.writer.Close()
}
