package auth

import (
	"context"
	"errors"
	"fmt"

	"japantune/internal/database"
	"japantune/internal/metrics"
	"japantune/internal/model"
	"japantune/internal/repository"
	"japantune/internal/validator"

	"github.com/rs/zerolog/log"
)

//go:generate mockgen -source=service.go -destination=./mocks/user_store_mock.go -package=mocks UserStore

// UserStore - доступ к учетным записям.
type UserStore interface {
	FindByLogin(ctx context.Context, login string) (*model.User, error)
	LoginTaken(ctx context.Context, login string) (bool, error)
	PhoneTaken(ctx context.Context, phone string) (bool, error)
	DefaultRoleID(ctx context.Context) (int, error)
	CreateUser(ctx context.Context, user *model.User) error
}

var (
	// ErrInvalidCredentials не уточняет, логин или пароль неверен.
	ErrInvalidCredentials = errors.New("неверный логин или пароль")
	ErrLoginTaken         = errors.New("логин уже занят")
	ErrPhoneTaken         = errors.New("номер телефона уже зарегистрирован")
	ErrPasswordMismatch   = errors.New("пароли не совпадают")
	ErrInvalidForm        = errors.New("форма заполнена неверно")
)

const constraintPhone = "uq_users_phone_number"

// FormError - незаполненное или некорректное поле регистрации.
type FormError struct {
	Field   string
	Message string
}

func (e *FormError) Error() string {
	return ErrInvalidForm.Error() + ": " + e.Field
}

func (e *FormError) Unwrap() error {
	return ErrInvalidForm
}

// Message возвращает текст ошибки входа или регистрации для показа пользователю.
func Message(err error) string {
	var ferr *FormError
	switch {
	case errors.As(err, &ferr):
		return ferr.Message
	case errors.Is(err, ErrInvalidCredentials):
		return "Неверный логин или пароль"
	case errors.Is(err, ErrLoginTaken):
		return "Пользователь с таким логином уже существует"
	case errors.Is(err, ErrPhoneTaken):
		return "Пользователь с таким номером телефона уже существует"
	case errors.Is(err, ErrPasswordMismatch):
		return "Пароли не совпадают"
	}
	return "Ошибка сервера, попробуйте позже"
}

// Сообщения для незаполненных полей регистрации.
var fieldMessages = map[string]string{
	"Login":           "Введите логин (до 20 символов)",
	"Password":        "Введите пароль",
	"ConfirmPassword": "Повторите пароль",
	"FirstName":       "Введите имя (до 30 символов)",
	"SurName":         "Введите фамилию (до 30 символов)",
	"PhoneNumber":     "Введите номер телефона (до 20 символов)",
}

// Registration - данные формы регистрации.
type Registration struct {
	Login           string `validate:"required,max=20"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required"`
	FirstName       string `validate:"required,max=30"`
	SurName         string `validate:"required,max=30"`
	PhoneNumber     string `validate:"required,max=20"`
}

// Service - вход и регистрация.
type Service struct {
	users UserStore
	hash  func(string) (string, error)
}

// NewService создает сервис аутентификации.
func NewService(users UserStore) *Service {
	return &Service{users: users, hash: HashPassword}
}

// Login проверяет логин и пароль. Любое несовпадение дает ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, login, password string) (*model.User, error) {
	if login == "" || password == "" {
		metrics.AuthAttempts.WithLabelValues("login", "invalid").Inc()
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByLogin(ctx, login)
	if errors.Is(err, repository.ErrNotFound) {
		metrics.AuthAttempts.WithLabelValues("login", "invalid").Inc()
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("login", "error").Inc()
		return nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}

	ok, err := CheckPassword(user.ClientPassword, password)
	if err != nil {
		// Хеш в базе поврежден или в старом формате: считаем вход неудачным.
		log.Warn().Err(err).Str("login", login).Msg("Не удалось проверить пароль")
	}
	if !ok {
		metrics.AuthAttempts.WithLabelValues("login", "invalid").Inc()
		return nil, ErrInvalidCredentials
	}

	metrics.AuthAttempts.WithLabelValues("login", "success").Inc()
	return user, nil
}

// Register создает клиента с ролью по умолчанию. Логин и телефон проверяются
// на уникальность до вставки.
func (s *Service) Register(ctx context.Context, reg Registration) (*model.User, error) {
	if err := validator.ValidateStruct(reg); err != nil {
		metrics.AuthAttempts.WithLabelValues("register", "invalid").Inc()
		field := "Login"
		if fields := validator.Fields(err); len(fields) > 0 {
			field = fields[0]
		}
		return nil, &FormError{Field: field, Message: fieldMessages[field]}
	}
	if reg.Password != reg.ConfirmPassword {
		metrics.AuthAttempts.WithLabelValues("register", "invalid").Inc()
		return nil, ErrPasswordMismatch
	}

	taken, err := s.users.LoginTaken(ctx, reg.Login)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("register", "error").Inc()
		return nil, err
	}
	if taken {
		metrics.AuthAttempts.WithLabelValues("register", "invalid").Inc()
		return nil, ErrLoginTaken
	}

	taken, err = s.users.PhoneTaken(ctx, reg.PhoneNumber)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("register", "error").Inc()
		return nil, err
	}
	if taken {
		metrics.AuthAttempts.WithLabelValues("register", "invalid").Inc()
		return nil, ErrPhoneTaken
	}

	roleID, err := s.users.DefaultRoleID(ctx)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("register", "error").Inc()
		return nil, err
	}

	hash, err := s.hash(reg.Password)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("register", "error").Inc()
		return nil, err
	}

	user := &model.User{
		FirstName:      reg.FirstName,
		SurName:        reg.SurName,
		PhoneNumber:    reg.PhoneNumber,
		ClientLogin:    reg.Login,
		ClientPassword: hash,
		RoleID:         roleID,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		// Параллельная регистрация упирается в уникальный индекс.
		if errors.Is(err, repository.ErrDuplicate) {
			metrics.AuthAttempts.WithLabelValues("register", "invalid").Inc()
			if database.Constraint(err) == constraintPhone {
				return nil, ErrPhoneTaken
			}
			return nil, ErrLoginTaken
		}
		metrics.AuthAttempts.WithLabelValues("register", "error").Inc()
		return nil, err
	}

	log.Info().Str("login", user.ClientLogin).Int("id", user.ID).Msg("Зарегистрирован новый пользователь")
	metrics.AuthAttempts.WithLabelValues("register", "success").Inc()
	return user, nil
}
