package service

import (
	"errors"
	"net/url"

	"japantune/internal/repository"
)

// Ошибки хранилища, которые различает слой представления.
var (
	ErrNotFound  = repository.ErrNotFound
	ErrConflict  = repository.ErrConflict
	ErrReference = repository.ErrReference
	ErrDuplicate = repository.ErrDuplicate
)

// Сообщения, показываемые пользователю.
const (
	MsgInvalidInput   = "Некорректные входные данные"
	MsgRatingRange    = "Оценка должна быть от 1 до 5"
	MsgReleaseYear    = "Год выпуска должен быть от 1900 до 2100"
	MsgMissingRef     = "Связанная запись не найдена"
	MsgNoRoles        = "Нет ни одной роли, создайте роль"
	MsgLoginTaken     = "Пользователь с таким логином уже существует"
	MsgPhoneTaken     = "Пользователь с таким телефоном уже существует"
	MsgConflict       = "Запись была изменена другим пользователем"
	MsgNotFound       = "Запись не найдена"
	MsgInUse          = "Запись используется в других данных и не может быть удалена"
	MsgConstraint     = "Данные нарушают ограничения базы"
	MsgSaveFailed     = "Ошибка при сохранении изменений"
	MsgDeleteFailed   = "Ошибка при удалении, изменения отменены"
	MsgPasswordNeeded = "Пароль обязателен"
)

// Поля формы, значения которых никогда не возвращаются обратно в форму.
var secretFields = []string{"clientPassword", "password", "confirmPassword"}

// ValidationError - введенные данные не прошли проверку и не были сохранены.
type ValidationError struct {
	Message string
	Values  url.Values // введенные значения без секретных полей
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ReferentialError - хранилище отклонило операцию из-за связей или ограничений.
type ReferentialError struct {
	Message string
	Values  url.Values
	Err     error
}

func (e *ReferentialError) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *ReferentialError) Unwrap() error {
	return e.Err
}

func invalid(form url.Values, msg string) *ValidationError {
	return &ValidationError{Message: msg, Values: echo(form)}
}

// echo копирует значения формы, убирая пароли.
func echo(form url.Values) url.Values {
	out := make(url.Values, len(form))
	for k, v := range form {
		out[k] = append([]string(nil), v...)
	}
	for _, k := range secretFields {
		out.Del(k)
	}
	return out
}

// referential превращает ошибки ограничений хранилища в ReferentialError.
// Остальные ошибки возвращаются как есть.
func referential(err error, form url.Values, msg string) error {
	switch {
	case errors.Is(err, repository.ErrReference):
	case errors.Is(err, repository.ErrDuplicate), errors.Is(err, repository.ErrCheck):
		msg = MsgConstraint
	default:
		return err
	}
	return &ReferentialError{Message: msg, Values: echo(form), Err: err}
}

// Message возвращает текст ошибки, безопасный для показа пользователю.
func Message(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	var rerr *ReferentialError
	if errors.As(err, &rerr) {
		return rerr.Message
	}
	switch {
	case errors.Is(err, ErrConflict):
		return MsgConflict
	case errors.Is(err, ErrNotFound):
		return MsgNotFound
	}
	return MsgSaveFailed
}

// Recoverable сообщает, можно ли показать форму повторно с введенными значениями.
func Recoverable(err error) bool {
	var verr *ValidationError
	var rerr *ReferentialError
	return errors.As(err, &verr) || errors.As(err, &rerr) || errors.Is(err, ErrConflict)
}
