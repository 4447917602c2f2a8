package repository

import (
	"context"
	"errors"

	"japantune/internal/metrics"
	"japantune/internal/model"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// Cascade удаляет запись вместе с зависимыми строками по объявленному графу
// владения. Все удаления выполняются в одной транзакции: зависимые раньше
// родителей, корень последним.
type Cascade struct {
	db     *gorm.DB
	tracer trace.Tracer
}

// NewCascade создает исполнитель каскадного удаления.
func NewCascade(db *gorm.DB) *Cascade {
	return &Cascade{
		db:     db,
		tracer: otel.Tracer("cascade"),
	}
}

// Delete удаляет корень owner с указанным id и все его зависимые строки.
// Возвращает общее количество удаленных строк. При ошибке на любом шаге
// транзакция откатывается и ничего не удаляется.
func (c *Cascade) Delete(ctx context.Context, owner model.Ownership, id int) (int64, error) {
	ctx, span := c.tracer.Start(ctx, "Cascade.Delete "+owner.Table)
	defer span.End()

	var total int64
	deleted := map[string]int64{}

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteDependents(tx, owner.Dependents, []int{id}, deleted); err != nil {
			return err
		}

		res := tx.Exec("DELETE FROM "+owner.Table+" WHERE id = ?", id)
		if res.Error != nil {
			return classify(owner.Table+".cascade", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		deleted[owner.Table] += res.RowsAffected
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Error().Err(err).Str("table", owner.Table).Int("id", id).Msg("Каскадное удаление отменено")
		}
		return 0, err
	}

	for table, n := range deleted {
		metrics.CascadeRowsDeleted.WithLabelValues(table).Add(float64(n))
		total += n
	}
	span.SetAttributes(attribute.Int64("rows_deleted", total))
	return total, nil
}

// deleteDependents обходит граф в пост-порядке: сначала потомки каждой
// зависимой таблицы, затем ее собственные строки.
func deleteDependents(tx *gorm.DB, deps []model.Dependent, parentIDs []int, deleted map[string]int64) error {
	for _, dep := range deps {
		if len(dep.Children) > 0 {
			var ids []int
			err := tx.Raw("SELECT id FROM "+dep.Table+" WHERE "+dep.Column+" IN ?", parentIDs).Scan(&ids).Error
			if err != nil {
				return classify(dep.Table+".cascade", err)
			}
			if len(ids) > 0 {
				if err := deleteDependents(tx, dep.Children, ids, deleted); err != nil {
					return err
				}
			}
		}

		res := tx.Exec("DELETE FROM "+dep.Table+" WHERE "+dep.Column+" IN ?", parentIDs)
		if res.Error != nil {
			return classify(dep.Table+".cascade", res.Error)
		}
		deleted[dep.Table] += res.RowsAffected
	}
	return nil
}
