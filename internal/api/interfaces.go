package api

import (
	"context"
	"net/http"
	"net/url"

	"japantune/internal/auth"
	"japantune/internal/model"
	"japantune/internal/repository"
	"japantune/internal/service"
)

//go:generate mockgen -source=interfaces.go -destination=./mocks/api_mock.go -package=mocks

// Authenticator - вход и регистрация.
type Authenticator interface {
	Login(ctx context.Context, login, password string) (*model.User, error)
	Register(ctx context.Context, reg auth.Registration) (*model.User, error)
}

// SessionManager хранит личность пользователя между запросами.
type SessionManager interface {
	SignIn(w http.ResponseWriter, r *http.Request, login string) error
	SignOut(w http.ResponseWriter, r *http.Request) error
	Identity(r *http.Request) (string, bool)
}

// EntityService - CRUD одной сущности, как его видят обработчики.
type EntityService[T any, P repository.Record[T]] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (P, error)
	Create(ctx context.Context, form url.Values) (P, error)
	Update(ctx context.Context, id int, form url.Values) (P, error)
	Delete(ctx context.Context, id int) (int64, error)
	Dependents(ctx context.Context, id int) ([]model.DependentCount, error)
	NewForm(ctx context.Context) (*service.Form[T], error)
	EditForm(ctx context.Context, id int) (*service.Form[T], error)
	RetryForm(ctx context.Context, id int, form url.Values, cause error) (*service.Form[T], error)
}
