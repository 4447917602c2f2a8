package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

//go:embed templates static
var assets embed.FS

var pageNames = []string{"home", "login", "register", "list", "details", "form", "delete", "error"}

// NavItem - пункт меню.
type NavItem struct {
	Path  string
	Title string
}

// Page - данные, общие для всех страниц. Body зависит от шаблона.
type Page struct {
	Title string
	User  string
	Nav   []NavItem
	Body  any
}

// Views хранит разобранные шаблоны: каждая страница вместе с layout.
type Views struct {
	pages map[string]*template.Template
}

// NewViews разбирает встроенные шаблоны.
func NewViews() (*Views, error) {
	v := &Views{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.ParseFS(assets, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("ошибка разбора шаблона %s: %w", name, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

// Render отрисовывает страницу в буфер и только затем пишет ответ,
// чтобы ошибка шаблона не оставила половину страницы.
func (v *Views) Render(w http.ResponseWriter, status int, name string, page Page) {
	t, ok := v.pages[name]
	if !ok {
		log.Error().Str("template", name).Msg("Шаблон не найден")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		log.Error().Err(err).Str("template", name).Msg("Ошибка отрисовки шаблона")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
