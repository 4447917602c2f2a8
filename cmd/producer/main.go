package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"japantune/internal/config"
	"japantune/internal/generator"
	"japantune/internal/logger"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"
)

// Producer отправляет сообщения импорта заказов в Kafka.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer создает и настраивает новый экземпляр продюсера.
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{writer: &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}}
}

// Run отправляет заказ раз в interval, пока не отменен ctx или не отправлено count сообщений.
// count <= 0 - без ограничения.
func (p *Producer) Run(ctx context.Context, interval time.Duration, count, userID, materialID, paymentID int) {
	log.Info().Msg("Продюсер запущен. Нажмите CTRL+C для остановки.")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for sent := 0; count <= 0 || sent < count; {
		select {
		case <-ctx.Done():
			log.Info().Msg("Продюсер останавливается.")
			return
		case <-ticker.C:
			order := generator.OrderMessage(userID, materialID, paymentID)
			orderBytes, err := json.Marshal(order)
			if err != nil {
				log.Error().Err(err).Msg("Ошибка сериализации заказа")
				continue
			}

			key := strconv.FormatInt(time.Now().UnixNano(), 10)
			if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: orderBytes}); err != nil {
				log.Error().Err(err).Msg("Ошибка отправки сообщения")
				continue
			}
			sent++
			log.Info().Str("key", key).Str("status", order.Status).Msg("Отправлен заказ")
		}
	}
}

func (p *Producer) Close() {
	if err := p.writer.Close(); err != nil {
		log.Error().Err(err).Msg("Ошибка закрытия Kafka writer")
	}
}

var (
	interval   time.Duration
	count      int
	userID     int
	materialID int
	paymentID  int
)

var rootCmd = &cobra.Command{
	Use:   "producer",
	Short: "Отправлять тестовые заказы в топик импорта",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		logger.Setup(cfg.Log.Level, cfg.Log.Pretty)

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		producer := NewProducer(cfg.Kafka.Brokers, cfg.Kafka.ImportTopic)
		defer producer.Close()

		producer.Run(ctx, interval, count, userID, materialID, paymentID)
	},
}

func init() {
	rootCmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "Пауза между сообщениями")
	rootCmd.Flags().IntVar(&count, "count", 0, "Сколько сообщений отправить (0 - без ограничения)")
	rootCmd.Flags().IntVar(&userID, "user", 1, "Клиент заказа")
	rootCmd.Flags().IntVar(&materialID, "material", 1, "Материал заказа")
	rootCmd.Flags().IntVar(&paymentID, "payment", 1, "Платеж заказа")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
