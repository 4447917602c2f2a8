package repository

import (
	"errors"
	"fmt"

	"japantune/internal/database"
	"japantune/internal/metrics"

	"gorm.io/gorm"
)

var (
	// ErrNotFound - запись с указанным id отсутствует.
	ErrNotFound = errors.New("запись не найдена")
	// ErrConflict - запись была изменена или удалена другим пользователем после чтения.
	ErrConflict = errors.New("запись была изменена другим пользователем")
	// ErrReference - операция нарушает внешний ключ.
	ErrReference = errors.New("запись связана с другими данными")
	// ErrDuplicate - значение уникальной колонки уже занято.
	ErrDuplicate = errors.New("значение уже используется")
	// ErrCheck - значение нарушает CHECK-ограничение схемы.
	ErrCheck = errors.New("значение нарушает ограничение схемы")
)

// classify переводит ошибку драйвера в одну из ошибок пакета. Прочие ошибки
// считаются ошибками хранилища, учитываются в метриках и оборачиваются.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case database.IsForeignKeyViolation(err):
		return violation(op, ErrReference, err)
	case database.IsUniqueViolation(err):
		return violation(op, ErrDuplicate, err)
	case database.IsCheckViolation(err):
		return violation(op, ErrCheck, err)
	}
	metrics.DBErrors.WithLabelValues(op).Inc()
	return fmt.Errorf("%s: %w", op, err)
}

// violation оборачивает и ошибку пакета, и ошибку драйвера: имя ограничения
// остается доступно через database.Constraint.
func violation(op string, kind, err error) error {
	return fmt.Errorf("%s: %w (%s): %w", op, kind, database.Constraint(err), err)
}
