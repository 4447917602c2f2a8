package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"time"

	"japantune/internal/config"
	"japantune/internal/metrics"
	"japantune/internal/model"
	"japantune/internal/service"
	"japantune/internal/validator"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=consumer.go -destination=./mocks/consumer_mock.go -package=mocks

// ImportActor - автор изменений, внесенных импортом, в событиях аудита.
const ImportActor = "kafka-import"

// MessageReader - источник сообщений с ручным коммитом.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MessageWriter - получатель сообщений (DLQ, аудит).
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderCreator создает заказ из значений формы.
type OrderCreator interface {
	Create(ctx context.Context, form url.Values) (*model.Order, error)
}

// OrderMessage - заказ во входящем сообщении импорта.
type OrderMessage struct {
	OrderDate  string `json:"order_date" validate:"required,datetime=2006-01-02"`
	Status     string `json:"status" validate:"required,max=12"`
	UserID     int    `json:"user_id" validate:"gt=0"`
	MaterialID int    `json:"material_id" validate:"gt=0"`
	PaymentID  int    `json:"payment_id" validate:"gt=0"`
	ReviewID   *int   `json:"review_id,omitempty" validate:"omitempty,gt=0"`
}

// Form переводит сообщение в значения формы заказа.
func (m OrderMessage) Form() url.Values {
	form := url.Values{
		"orderDate":  {m.OrderDate},
		"status":     {m.Status},
		"userId":     {strconv.Itoa(m.UserID)},
		"materialId": {strconv.Itoa(m.MaterialID)},
		"paymentId":  {strconv.Itoa(m.PaymentID)},
	}
	if m.ReviewID != nil {
		form.Set("reviewId", strconv.Itoa(*m.ReviewID))
	}
	return form
}

// Consumer читает заказы из топика импорта и сохраняет их через сервис заказов.
type Consumer struct {
	reader     MessageReader
	dlqWriter  MessageWriter // Продюсер для отправки "битых" сообщений в DLQ
	orders     OrderCreator
	tracer     trace.Tracer
	maxRetries int // Количество попыток для временных ошибок БД
	backoff    func(attempt int) time.Duration
}

// NewConsumer создает новый экземпляр Consumer.
func NewConsumer(cfg config.KafkaConfig, orders OrderCreator) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.ImportTopic,
		MinBytes: 1,
		MaxBytes: 10e6, // 10MB
	})

	dlqWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.DLQTopic,
		Balancer: &kafka.LeastBytes{},
	}

	return newConsumer(reader, dlqWriter, orders)
}

func newConsumer(reader MessageReader, dlq MessageWriter, orders OrderCreator) *Consumer {
	return &Consumer{
		reader:     reader,
		dlqWriter:  dlq,
		orders:     orders,
		tracer:     otel.Tracer("kafka-consumer"),
		maxRetries: 3,
		backoff: func(attempt int) time.Duration {
			return time.Second * time.Duration(attempt)
		},
	}
}

// Run читает сообщения до отмены ctx.
func (c *Consumer) Run(ctx context.Context) {
	log.Info().Msg("Kafka-консюмер импорта заказов запущен")
	defer func() {
		if err := c.reader.Close(); err != nil {
			log.Error().Err(err).Msg("Ошибка закрытия Kafka-ридера")
		}
		if err := c.dlqWriter.Close(); err != nil {
			log.Error().Err(err).Msg("Ошибка закрытия Kafka (DLQ) writer")
		}
	}()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Msg("Kafka-консюмер останавливается")
				return
			}
			log.Error().Err(err).Msg("Ошибка чтения сообщения из Kafka")
			continue
		}

		// Сообщение коммитится и после успеха, и после отправки в DLQ.
		c.processMessage(ctx, msg)
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			log.Error().Err(err).Str("key", string(msg.Key)).Msg("Ошибка коммита сообщения")
		}
	}
}

// processMessage разбирает, проверяет и сохраняет заказ. Невалидные сообщения
// и заказы, которые не удалось сохранить за maxRetries попыток, уходят в DLQ.
func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message) {
	ctx, span := c.tracer.Start(ctx, "Consumer.processMessage")
	defer span.End()

	var payload OrderMessage
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		log.Warn().Err(err).Str("key", string(msg.Key)).Msg("Невалидное JSON-сообщение, отправка в DLQ")
		c.sendToDLQ(ctx, msg, "json_unmarshal_error", err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_validation").Inc()
		return
	}

	if err := validator.ValidateStruct(payload); err != nil {
		log.Warn().Err(err).Str("key", string(msg.Key)).Msg("Ошибка валидации, отправка в DLQ")
		c.sendToDLQ(ctx, msg, "validation_error", err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_validation").Inc()
		return
	}

	ctx = service.WithActor(ctx, ImportActor)
	form := payload.Form()

	var saveErr error
	for i := 0; i < c.maxRetries; i++ {
		var order *model.Order
		order, saveErr = c.orders.Create(ctx, form)
		if saveErr == nil {
			log.Info().Int("id", order.ID).Str("key", string(msg.Key)).Msg("Заказ импортирован")
			metrics.KafkaMessagesProcessed.WithLabelValues("success").Inc()
			return
		}
		if rejected(saveErr) {
			log.Warn().Err(saveErr).Str("key", string(msg.Key)).Msg("Заказ отклонен, отправка в DLQ")
			c.sendToDLQ(ctx, msg, "validation_error", saveErr)
			metrics.KafkaMessagesProcessed.WithLabelValues("dlq_validation").Inc()
			return
		}

		metrics.DBErrors.WithLabelValues("orders.import").Inc()
		log.Error().Err(saveErr).Int("attempt", i+1).Int("max", c.maxRetries).Msg("Ошибка сохранения заказа")
		if i+1 < c.maxRetries {
			select {
			case <-ctx.Done():
				return
			case <-time.After(c.backoff(i + 1)):
			}
		}
	}

	log.Error().Str("key", string(msg.Key)).Int("attempts", c.maxRetries).Msg("Не удалось сохранить заказ, отправка в DLQ")
	c.sendToDLQ(ctx, msg, "db_save_error", saveErr)
	metrics.KafkaMessagesProcessed.WithLabelValues("dlq_db_error").Inc()
}

// rejected - ошибка в самих данных заказа, повтор не поможет.
func rejected(err error) bool {
	var verr *service.ValidationError
	var rerr *service.ReferentialError
	return errors.As(err, &verr) || errors.As(err, &rerr)
}

// sendToDLQ отправляет "битое" сообщение в DLQ топик.
func (c *Consumer) sendToDLQ(ctx context.Context, originalMsg kafka.Message, reason string, procErr error) {
	ctx, span := c.tracer.Start(ctx, "Consumer.sendToDLQ")
	defer span.End()

	err := c.dlqWriter.WriteMessages(ctx, kafka.Message{
		Key:   originalMsg.Key,
		Value: originalMsg.Value,
		Headers: []kafka.Header{
			{Key: "X-Original-Topic", Value: []byte(originalMsg.Topic)},
			{Key: "X-Error-Reason", Value: []byte(reason)},
			{Key: "X-Error-Details", Value: []byte(procErr.Error())},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("key", string(originalMsg.Key)).Msg("КРИТИЧНО: не удалось отправить сообщение в DLQ")
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_failed_write").Inc()
		return
	}
	log.Info().Str("key", string(originalMsg.Key)).Str("reason", reason).Msg("Сообщение отправлено в DLQ")
}
