package database

import (
	"context"
	"errors"
	"fmt"

	"japantune/internal/metrics"
	"japantune/internal/model"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// ErrUnknownTable возвращается для таблиц и колонок вне схемы приложения.
var ErrUnknownTable = errors.New("неизвестная таблица или колонка")

// Запросы справочных списков для форм.
var optionQueries = map[model.LookupKind]string{
	model.LookupRoles:     `SELECT id, title AS label FROM roles ORDER BY id`,
	model.LookupUsers:     `SELECT id, first_name || ' ' || sur_name AS label FROM users ORDER BY id`,
	model.LookupSuppliers: `SELECT id, title AS label FROM supplier ORDER BY id`,
	model.LookupMaterials: `SELECT id, title AS label FROM material ORDER BY id`,
	model.LookupPayments:  `SELECT id, '#' || id::text || ' ' || pay_method || ' ' || price::text AS label FROM payment ORDER BY id`,
	model.LookupReviews:   `SELECT id, COALESCE(title, '#' || id::text) AS label FROM review ORDER BY id`,
}

// Колонки, по которым разрешена проверка уникальности.
var uniqueColumns = map[string]map[string]bool{
	model.TableUsers: {"client_login": true, "phone_number": true},
}

// Catalog - read-side поверх sqlx: справочники, проверки существования,
// уникальности и подсчет зависимых строк.
type Catalog struct {
	db     *sqlx.DB
	tracer trace.Tracer
}

// NewCatalog создает каталог поверх соединения.
func NewCatalog(db *sqlx.DB) *Catalog {
	return &Catalog{
		db:     db,
		tracer: otel.Tracer("catalog"),
	}
}

// Options возвращает справочный список указанного вида.
func (c *Catalog) Options(ctx context.Context, kind model.LookupKind) ([]model.Option, error) {
	ctx, span := c.tracer.Start(ctx, "Catalog.Options")
	defer span.End()

	query, ok := optionQueries[kind]
	if !ok {
		return nil, fmt.Errorf("справочник %q: %w", kind, ErrUnknownTable)
	}

	options := []model.Option{}
	if err := c.db.SelectContext(ctx, &options, query); err != nil {
		metrics.DBErrors.WithLabelValues("catalog.options").Inc()
		return nil, fmt.Errorf("ошибка получения справочника %s: %w", kind, err)
	}
	return options, nil
}

// Exists проверяет наличие строки с указанным id.
func (c *Catalog) Exists(ctx context.Context, table string, id int) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "Catalog.Exists")
	defer span.End()

	if !model.KnownTable(table) {
		return false, fmt.Errorf("%s: %w", table, ErrUnknownTable)
	}

	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)`, table)
	if err := c.db.GetContext(ctx, &exists, query, id); err != nil {
		metrics.DBErrors.WithLabelValues("catalog.exists").Inc()
		return false, fmt.Errorf("ошибка проверки %s #%d: %w", table, id, err)
	}
	return exists, nil
}

// FirstID возвращает наименьший id таблицы или 0, если таблица пуста.
func (c *Catalog) FirstID(ctx context.Context, table string) (int, error) {
	ctx, span := c.tracer.Start(ctx, "Catalog.FirstID")
	defer span.End()

	if !model.KnownTable(table) {
		return 0, fmt.Errorf("%s: %w", table, ErrUnknownTable)
	}

	var id int
	query := fmt.Sprintf(`SELECT COALESCE(MIN(id), 0) FROM %s`, table)
	if err := c.db.GetContext(ctx, &id, query); err != nil {
		metrics.DBErrors.WithLabelValues("catalog.first_id").Inc()
		return 0, fmt.Errorf("ошибка получения первой записи %s: %w", table, err)
	}
	return id, nil
}

// Taken сообщает, занято ли значение уникальной колонки другой записью.
// exceptID исключает редактируемую запись; 0 - проверка для новой.
func (c *Catalog) Taken(ctx context.Context, table, column, value string, exceptID int) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "Catalog.Taken")
	defer span.End()

	if !uniqueColumns[table][column] {
		return false, fmt.Errorf("%s.%s: %w", table, column, ErrUnknownTable)
	}

	var taken bool
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1 AND id <> $2)`, table, column)
	if err := c.db.GetContext(ctx, &taken, query, value, exceptID); err != nil {
		metrics.DBErrors.WithLabelValues("catalog.taken").Inc()
		return false, fmt.Errorf("ошибка проверки уникальности %s.%s: %w", table, column, err)
	}
	return taken, nil
}

// CountReferences считает строки, напрямую ссылающиеся на запись, по каждой
// таблице-ссылателю. Порядок соответствует model.References.
func (c *Catalog) CountReferences(ctx context.Context, table string, id int) ([]model.DependentCount, error) {
	ctx, span := c.tracer.Start(ctx, "Catalog.CountReferences")
	defer span.End()

	refs, ok := model.References[table]
	if !ok {
		return nil, fmt.Errorf("%s: %w", table, ErrUnknownTable)
	}

	counts := make([]model.DependentCount, 0, len(refs))
	for _, ref := range refs {
		var n int
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, ref.Table, ref.Column)
		if err := c.db.GetContext(ctx, &n, query, id); err != nil {
			metrics.DBErrors.WithLabelValues("catalog.count_references").Inc()
			return nil, fmt.Errorf("ошибка подсчета ссылок %s.%s: %w", ref.Table, ref.Column, err)
		}
		counts = append(counts, model.DependentCount{Table: ref.Table, Count: n})
	}
	return counts, nil
}
