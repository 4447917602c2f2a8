package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"japantune/internal/api"
	"japantune/internal/appcontext"
	"japantune/internal/config"
	"japantune/internal/database"
	"japantune/internal/kafka"
	"japantune/internal/logger"
	"japantune/internal/metrics"
	"japantune/internal/tracing"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rollbackSteps int

var rootCmd = &cobra.Command{
	Use:   "japantune",
	Short: "Учет клиентов, автомобилей и заказов тюнинг-ателье",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		logger.Setup(cfg.Log.Level, cfg.Log.Pretty)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить веб-приложение",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Управление миграциями БД",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Применить все миграции",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		return database.RunMigrations(cfg.Postgres.URL, cfg.Postgres.MigrationsPath)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Откатить последние миграции",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		return database.RollbackMigrations(cfg.Postgres.URL, cfg.Postgres.MigrationsPath, rollbackSteps)
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&rollbackSteps, "steps", 1, "Количество откатываемых миграций")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func runServe() error {
	cfg := config.Get()
	metrics.Init()

	if cfg.Tracing.Enabled {
		shutdownTracer, err := tracing.InitTracerProvider(cfg.Tracing.ServiceName, cfg.Tracing.JaegerURL, cfg.Tracing.SampleRatio)
		if err != nil {
			log.Warn().Err(err).Msg("Трассировка не запущена")
		} else {
			defer shutdownTracer()
		}
	}

	// Инициализация хранилища и сервисов
	app, err := appcontext.NewApplicationContext(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error().Err(err).Msg("Ошибка закрытия соединений")
		}
	}()

	handlers, err := app.Handlers()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск Kafka Consumer импорта заказов
	if cfg.Kafka.Enabled {
		consumer := kafka.NewConsumer(cfg.Kafka, app.Services.Orders)
		go consumer.Run(ctx)
	}

	// Запуск HTTP-сервера
	server := api.NewServer(cfg.HTTP.Port, handlers)
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Run()
	}()

	// Ожидание сигнала для корректного завершения работы
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-shutdown:
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("ошибка HTTP-сервера: %w", err)
		}
	}

	log.Info().Msg("Сервис останавливается...")
	cancel()
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Ошибка остановки HTTP-сервера")
	}
	log.Info().Msg("Сервис успешно остановлен.")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Ошибка выполнения команды")
		os.Exit(1)
	}
}
