package database

import (
	"errors"
	"fmt"
	stdlog "log"
	"time"

	"japantune/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Поддерживаемые драйверы database/sql.
const (
	DriverPQ  = "postgres"
	DriverPGX = "pgx"
)

// Storage объединяет два доступа к одной базе: sqlx для сырых запросов
// каталога и gorm для сущностей. Оба работают поверх одного пула соединений.
type Storage struct {
	SQL *sqlx.DB
	ORM *gorm.DB
}

// New создает подключение к БД, применяет миграции и открывает gorm
// поверх того же пула.
func New(cfg config.PostgresConfig) (*Storage, error) {
	driver := cfg.Driver
	if driver != DriverPGX {
		driver = DriverPQ
	}

	db, err := sqlx.Connect(driver, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	// Запуск миграций
	if err := RunMigrations(cfg.URL, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ошибка применения миграций: %w", err)
	}

	orm, err := OpenGorm(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info().Str("driver", driver).Msg("Подключение к PostgreSQL установлено.")
	return &Storage{SQL: db, ORM: orm}, nil
}

// OpenGorm открывает gorm поверх уже установленного соединения.
func OpenGorm(db *sqlx.DB) (*gorm.DB, error) {
	orm, err := gorm.Open(postgres.New(postgres.Config{Conn: db.DB}), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("не удалось инициализировать gorm: %w", err)
	}
	return orm, nil
}

// GormConfig возвращает общие настройки gorm. Транзакции открываются явно
// там, где они нужны (каскадное удаление), а запросы пишутся в общий логгер.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		SkipDefaultTransaction: true,
		Logger: gormlogger.New(
			stdlog.New(log.Logger, "", 0),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	}
}

// RunMigrations выполняет миграции БД до последней версии.
func RunMigrations(dbURL, migrationsPath string) error {
	log.Info().Msg("Поиск и применение миграций...")

	m, err := newMigrate(dbURL, migrationsPath)
	if err != nil {
		return err
	}
	defer m.Close()

	// Применяем миграции "вверх"
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("не удалось выполнить миграции: %w", err)
	}

	return logVersion(m)
}

// RollbackMigrations откатывает указанное количество миграций.
func RollbackMigrations(dbURL, migrationsPath string, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("количество шагов отката должно быть положительным: %d", steps)
	}

	m, err := newMigrate(dbURL, migrationsPath)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("не удалось откатить миграции: %w", err)
	}

	return logVersion(m)
}

func newMigrate(dbURL, migrationsPath string) (*migrate.Migrate, error) {
	// Важно: 'file://' префикс
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dbURL)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать экземпляр миграции: %w", err)
	}
	return m, nil
}

func logVersion(m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info().Msg("Миграции откачены полностью, схема пуста.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("не удалось получить версию миграции: %w", err)
	}

	if dirty {
		log.Warn().Uint("version", version).Msg("БД в 'грязном' состоянии (dirty). Рекомендуется проверка.")
	}

	log.Info().Uint("version", version).Msg("Миграции успешно применены.")
	return nil
}

// Close закрывает соединение с БД.
func (s *Storage) Close() error {
	return s.SQL.Close()
}
