package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record - ограничение для сущностей, хранимых через Repository:
// указатель на структуру с id и токеном версии.
type Record[T any] interface {
	*T
	Key() int
	Revision() int
	SetRevision(int)
}

// Repository - обобщенное хранилище одной сущности поверх gorm.
type Repository[T any, P Record[T]] struct {
	db       *gorm.DB
	table    string
	columns  []string // колонки, которые разрешено менять при обновлении
	preloads []string // связи, загружаемые вместе с записью
	tracer   trace.Tracer
}

// New создает хранилище для таблицы table. columns - изменяемые колонки,
// preloads - имена связей для жадной загрузки.
func New[T any, P Record[T]](db *gorm.DB, table string, columns []string, preloads ...string) *Repository[T, P] {
	return &Repository[T, P]{
		db:       db,
		table:    table,
		columns:  columns,
		preloads: preloads,
		tracer:   otel.Tracer("repository"),
	}
}

// Table возвращает имя таблицы хранилища.
func (r *Repository[T, P]) Table() string {
	return r.table
}

func (r *Repository[T, P]) withPreloads(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

// List возвращает все записи вместе со связанными, упорядоченные по id.
func (r *Repository[T, P]) List(ctx context.Context) ([]T, error) {
	ctx, span := r.tracer.Start(ctx, "Repository.List "+r.table)
	defer span.End()

	items := []T{}
	if err := r.withPreloads(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, classify(r.table+".list", err)
	}
	return items, nil
}

// Get возвращает запись по id или ErrNotFound.
func (r *Repository[T, P]) Get(ctx context.Context, id int) (P, error) {
	ctx, span := r.tracer.Start(ctx, "Repository.Get "+r.table)
	defer span.End()

	item := P(new(T))
	if err := r.withPreloads(ctx).First(item, id).Error; err != nil {
		return nil, classify(r.table+".get", err)
	}
	return item, nil
}

// Create вставляет запись без связанных объектов и заполняет ее id.
func (r *Repository[T, P]) Create(ctx context.Context, item P) error {
	ctx, span := r.tracer.Start(ctx, "Repository.Create "+r.table)
	defer span.End()

	item.SetRevision(1)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error; err != nil {
		return classify(r.table+".create", err)
	}
	return nil
}

// Update записывает только изменяемые колонки при условии, что версия в базе
// совпадает с версией item. При несовпадении возвращает ErrConflict,
// если записи уже нет - ErrNotFound.
func (r *Repository[T, P]) Update(ctx context.Context, item P) error {
	ctx, span := r.tracer.Start(ctx, "Repository.Update "+r.table)
	defer span.End()

	prev := item.Revision()
	item.SetRevision(prev + 1)

	cols := make([]string, 0, len(r.columns)+2)
	cols = append(cols, r.columns...)
	cols = append(cols, "version", "updated_at")

	res := r.db.WithContext(ctx).
		Model(item).
		Where("version = ?", prev).
		Select(cols).
		Omit(clause.Associations).
		Updates(item)
	if res.Error != nil {
		item.SetRevision(prev)
		return classify(r.table+".update", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	item.SetRevision(prev)
	exists, err := r.Exists(ctx, item.Key())
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return ErrConflict
}

// Delete удаляет одну запись без каскада. Ссылки на нее дают ErrReference.
func (r *Repository[T, P]) Delete(ctx context.Context, id int) error {
	ctx, span := r.tracer.Start(ctx, "Repository.Delete "+r.table)
	defer span.End()

	res := r.db.WithContext(ctx).Delete(P(new(T)), id)
	if res.Error != nil {
		return classify(r.table+".delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists проверяет наличие записи.
func (r *Repository[T, P]) Exists(ctx context.Context, id int) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(P(new(T))).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, classify(r.table+".exists", err)
	}
	return n > 0, nil
}
