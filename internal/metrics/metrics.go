package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

var (
	// HttpRequestsTotal - Счетчик HTTP-запросов
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Количество HTTP запросов",
		},
		[]string{"handler", "status"}, // Метки: шаблон маршрута и http-статус
	)

	// HttpRequestDuration - Гистограмма длительности HTTP-запросов
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Длительность HTTP запросов",
		},
		[]string{"handler"},
	)

	// DBErrors - Счетчик ошибок базы данных
	DBErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_errors_total",
			Help: "Количество ошибок при работе с БД",
		},
		[]string{"operation"}, // Метки: "car.create", "users.cascade", "catalog.exists" ...
	)

	// CascadeRowsDeleted - Счетчик строк, удаленных каскадно
	CascadeRowsDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cascade_rows_deleted_total",
			Help: "Количество строк, удаленных при каскадном удалении",
		},
		[]string{"table"},
	)

	// AuthAttempts - Счетчик попыток входа и регистрации
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Количество попыток входа и регистрации",
		},
		[]string{"action", "result"}, // action: login|register, result: success|invalid|error
	)

	// AuditEvents - Счетчик опубликованных аудит-событий
	AuditEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_events_total",
			Help: "Количество аудит-событий, отправленных в Kafka",
		},
		[]string{"status"}, // "sent", "failed"
	)

	// KafkaMessagesProcessed - Счетчик обработанных сообщений импорта заказов
	KafkaMessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Количество обработанных сообщений Kafka",
		},
		[]string{"status"}, // Метки: "success", "dlq_validation", "dlq_db_error", "dlq_failed_write"
	)
)

// Init используется для регистрации метрик.
// promauto регистрирует их автоматически при создании.
func Init() {
	log.Info().Msg("Prometheus метрики инициализированы.")
}
