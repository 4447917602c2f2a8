package api

import (
	"errors"
	"net/http"
	"strings"

	"japantune/internal/auth"
	"japantune/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Mounter - набор маршрутов одной сущности.
type Mounter interface {
	Nav() NavItem
	Mount(r chi.Router, h *Handlers)
}

// Handlers обслуживает страницы входа, регистрации и общие части сайта.
type Handlers struct {
	views        *Views
	auth         Authenticator
	sessions     SessionManager
	authRequired bool
	resources    []Mounter
	nav          []NavItem
}

// NewHandlers создает обработчики сайта. resources - разделы меню в порядке показа.
func NewHandlers(views *Views, authn Authenticator, sessions SessionManager, authRequired bool, resources ...Mounter) *Handlers {
	h := &Handlers{
		views:        views,
		auth:         authn,
		sessions:     sessions,
		authRequired: authRequired,
		resources:    resources,
	}
	for _, res := range resources {
		h.nav = append(h.nav, res.Nav())
	}
	return h
}

type loginBody struct {
	Login string
	Next  string
	Error string
}

type registerBody struct {
	Login       string
	FirstName   string
	SurName     string
	PhoneNumber string
	Error       string
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, name, title string, body any) {
	h.views.Render(w, status, name, Page{
		Title: title,
		User:  service.ActorFrom(r.Context()),
		Nav:   h.nav,
		Body:  body,
	})
}

func (h *Handlers) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "error", "Не найдено", service.MsgNotFound)
}

// fail показывает страницу ошибки: 404 для отсутствующей записи, иначе 500
// без подробностей.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	log.Error().Err(err).Str("path", r.URL.Path).Msg("Ошибка обработки запроса")
	h.render(w, r, http.StatusInternalServerError, "error", "Ошибка", "Внутренняя ошибка сервера, попробуйте позже")
}

// Home - главная страница.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "home", "Главная", nil)
}

// LoginPage показывает форму входа. Уже вошедший пользователь уходит на главную.
func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if service.ActorFrom(r.Context()) != "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.render(w, r, http.StatusOK, "login", "Вход", loginBody{Next: r.URL.Query().Get("next")})
}

// Login проверяет учетные данные и открывает сессию.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Некорректная форма", http.StatusBadRequest)
		return
	}
	login := strings.TrimSpace(r.PostForm.Get("login"))
	next := r.PostForm.Get("next")

	user, err := h.auth.Login(r.Context(), login, r.PostForm.Get("password"))
	if err != nil {
		status := http.StatusUnauthorized
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			log.Error().Err(err).Str("login", login).Msg("Ошибка входа")
			status = http.StatusInternalServerError
		}
		h.render(w, r, status, "login", "Вход", loginBody{Login: login, Next: next, Error: auth.Message(err)})
		return
	}

	if err := h.sessions.SignIn(w, r, user.ClientLogin); err != nil {
		h.fail(w, r, err)
		return
	}
	log.Info().Str("login", user.ClientLogin).Msg("Пользователь вошел")
	http.Redirect(w, r, safeNext(next), http.StatusSeeOther)
}

// RegisterPage показывает форму регистрации.
func (h *Handlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if service.ActorFrom(r.Context()) != "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.render(w, r, http.StatusOK, "register", "Регистрация", registerBody{})
}

// Register создает учетную запись клиента и сразу выполняет вход.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Некорректная форма", http.StatusBadRequest)
		return
	}
	reg := auth.Registration{
		Login:           strings.TrimSpace(r.PostForm.Get("login")),
		Password:        r.PostForm.Get("password"),
		ConfirmPassword: r.PostForm.Get("confirmPassword"),
		FirstName:       strings.TrimSpace(r.PostForm.Get("firstName")),
		SurName:         strings.TrimSpace(r.PostForm.Get("surName")),
		PhoneNumber:     strings.TrimSpace(r.PostForm.Get("phoneNumber")),
	}

	user, err := h.auth.Register(r.Context(), reg)
	if err != nil {
		status := http.StatusUnprocessableEntity
		switch {
		case errors.Is(err, auth.ErrLoginTaken), errors.Is(err, auth.ErrPhoneTaken):
			status = http.StatusConflict
		case !errors.Is(err, auth.ErrInvalidForm) && !errors.Is(err, auth.ErrPasswordMismatch):
			log.Error().Err(err).Str("login", reg.Login).Msg("Ошибка регистрации")
			status = http.StatusInternalServerError
		}
		h.render(w, r, status, "register", "Регистрация", registerBody{
			Login:       reg.Login,
			FirstName:   reg.FirstName,
			SurName:     reg.SurName,
			PhoneNumber: reg.PhoneNumber,
			Error:       auth.Message(err),
		})
		return
	}

	if err := h.sessions.SignIn(w, r, user.ClientLogin); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout закрывает сессию.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		log.Warn().Err(err).Msg("Не удалось удалить сессию")
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// safeNext допускает возврат только на локальный путь.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
