package auth

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"
)

const loginKey = "login"

// SessionKey возвращает ключ подписи cookie. Без настроенного ключа создается
// случайный: сессии не переживают перезапуск и не разделяются между экземплярами.
func SessionKey(configured string) []byte {
	if configured != "" {
		return []byte(configured)
	}
	log.Warn().Msg("SESSION_KEY не задан, используется случайный ключ сессий")
	return securecookie.GenerateRandomKey(32)
}

// Sessions хранит логин пользователя в подписанной cookie.
type Sessions struct {
	store *sessions.CookieStore
	name  string
}

// NewSessions создает хранилище сессий. key - ключ подписи cookie.
func NewSessions(key []byte, name string, secure bool) *Sessions {
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Sessions{store: store, name: name}
}

// SignIn устанавливает личность пользователя в сессии.
func (s *Sessions) SignIn(w http.ResponseWriter, r *http.Request, login string) error {
	// Ошибка означает поврежденную cookie; вместо нее будет выдана новая.
	session, _ := s.store.Get(r, s.name)
	session.Values[loginKey] = login
	return session.Save(r, w)
}

// SignOut удаляет cookie сессии.
func (s *Sessions) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, s.name)
	delete(session.Values, loginKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// Identity возвращает логин из сессии.
func (s *Sessions) Identity(r *http.Request) (string, bool) {
	session, err := s.store.Get(r, s.name)
	if err != nil {
		return "", false
	}
	login, ok := session.Values[loginKey].(string)
	return login, ok && login != ""
}
