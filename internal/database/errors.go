package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Коды SQLSTATE, которые приложение различает.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// sqlState извлекает код ошибки PostgreSQL независимо от драйвера.
func sqlState(err error) (code, constraint string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// IsUniqueViolation - нарушено ограничение уникальности.
func IsUniqueViolation(err error) bool {
	code, _ := sqlState(err)
	return code == codeUniqueViolation
}

// IsForeignKeyViolation - нарушен внешний ключ.
func IsForeignKeyViolation(err error) bool {
	code, _ := sqlState(err)
	return code == codeForeignKeyViolation
}

// IsCheckViolation - нарушено CHECK-ограничение.
func IsCheckViolation(err error) bool {
	code, _ := sqlState(err)
	return code == codeCheckViolation
}

// Constraint возвращает имя нарушенного ограничения, если драйвер его сообщил.
func Constraint(err error) string {
	_, name := sqlState(err)
	return name
}
