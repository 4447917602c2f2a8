package api

import (
	"errors"
	"net/http"
	"strconv"

	"japantune/internal/model"
	"japantune/internal/repository"
	"japantune/internal/service"

	"github.com/go-chi/chi/v5"
)

// Column - колонка таблицы списка и строка страницы просмотра.
type Column[T any] struct {
	Title string
	Value func(item *T) string
}

// Field - поле формы создания и редактирования.
type Field struct {
	Name     string
	Label    string
	Type     string // text, number, date, password, tel, select, textarea
	Lookup   model.LookupKind
	Required bool
	MaxLen   int
	Min      string
	Max      string
	Step     string
	Hint     string
}

// Resource - страницы списка, просмотра, создания, изменения и удаления одной сущности.
type Resource[T any, P repository.Record[T]] struct {
	Path    string
	Title   string
	Service EntityService[T, P]
	Columns []Column[T]
	Fields  []Field
	Cascade bool // удаление уносит зависимые записи

	site *Handlers
}

type row struct {
	ID    int
	Cells []string
}

type listBody struct {
	Path    string
	Headers []string
	Rows    []row
}

type pair struct {
	Label string
	Value string
}

type detailsBody struct {
	Path  string
	ID    int
	Pairs []pair
}

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

type fieldView struct {
	Field
	Value   string
	Options []optionView
}

type formBody struct {
	Path    string
	ID      int
	Action  string
	Version string
	Fields  []fieldView
	Error   string
}

type dependentView struct {
	Title string
	Count int
}

type deleteBody struct {
	Path       string
	ID         int
	Pairs      []pair
	Dependents []dependentView
	Cascade    bool
	Error      string
}

// Nav возвращает пункт меню раздела.
func (res *Resource[T, P]) Nav() NavItem {
	return NavItem{Path: res.Path, Title: res.Title}
}

// Mount регистрирует маршруты раздела.
func (res *Resource[T, P]) Mount(r chi.Router, h *Handlers) {
	res.site = h
	r.Route("/"+res.Path, func(r chi.Router) {
		r.Get("/", res.list)
		r.Get("/create", res.newForm)
		r.Post("/create", res.create)
		r.Get("/{id}", res.details)
		r.Get("/{id}/edit", res.editForm)
		r.Post("/{id}/edit", res.update)
		r.Get("/{id}/delete", res.confirmDelete)
		r.Post("/{id}/delete", res.delete)
	})
}

func (res *Resource[T, P]) list(w http.ResponseWriter, r *http.Request) {
	items, err := res.Service.List(r.Context())
	if err != nil {
		res.site.fail(w, r, err)
		return
	}

	body := listBody{Path: res.Path, Rows: make([]row, 0, len(items))}
	for _, c := range res.Columns {
		body.Headers = append(body.Headers, c.Title)
	}
	for i := range items {
		item := &items[i]
		body.Rows = append(body.Rows, row{ID: P(item).Key(), Cells: res.cells(item)})
	}
	res.site.render(w, r, http.StatusOK, "list", res.Title, body)
}

func (res *Resource[T, P]) details(w http.ResponseWriter, r *http.Request) {
	id, ok := res.id(w, r)
	if !ok {
		return
	}
	item, err := res.Service.Get(r.Context(), id)
	if err != nil {
		res.site.fail(w, r, err)
		return
	}
	res.site.render(w, r, http.StatusOK, "details", res.Title, detailsBody{Path: res.Path, ID: id, Pairs: res.pairs((*T)(item))})
}

func (res *Resource[T, P]) newForm(w http.ResponseWriter, r *http.Request) {
	form, err := res.Service.NewForm(r.Context())
	if err != nil {
		res.site.fail(w, r, err)
		return
	}
	res.renderForm(w, r, http.StatusOK, 0, form)
}

func (res *Resource[T, P]) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Некорректная форма", http.StatusBadRequest)
		return
	}
	if _, err := res.Service.Create(r.Context(), r.PostForm); err != nil {
		res.retry(w, r, 0, err)
		return
	}
	http.Redirect(w, r, "/"+res.Path, http.StatusSeeOther)
}

func (res *Resource[T, P]) editForm(w http.ResponseWriter, r *http.Request) {
	id, ok := res.id(w, r)
	if !ok {
		return
	}
	form, err := res.Service.EditForm(r.Context(), id)
	if err != nil {
		res.site.fail(w, r, err)
		return
	}
	res.renderForm(w, r, http.StatusOK, id, form)
}

func (res *Resource[T, P]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := res.id(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Некорректная форма", http.StatusBadRequest)
		return
	}
	if _, err := res.Service.Update(r.Context(), id, r.PostForm); err != nil {
		res.retry(w, r, id, err)
		return
	}
	http.Redirect(w, r, "/"+res.Path, http.StatusSeeOther)
}

// retry показывает форму повторно с введенными значениями и сообщением:
// 422 для неверных данных, 409 для конфликтов и нарушений связей.
func (res *Resource[T, P]) retry(w http.ResponseWriter, r *http.Request, id int, cause error) {
	if !service.Recoverable(cause) {
		res.site.fail(w, r, cause)
		return
	}
	form, err := res.Service.RetryForm(r.Context(), id, r.PostForm, cause)
	if err != nil {
		res.site.fail(w, r, err)
		return
	}

	status := http.StatusConflict
	var verr *service.ValidationError
	if errors.As(cause, &verr) {
		status = http.StatusUnprocessableEntity
	}
	res.renderForm(w, r, status, id, form)
}

func (res *Resource[T, P]) confirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := res.id(w, r)
	if !ok {
		return
	}
	res.renderDelete(w, r, http.StatusOK, id, "")
}

func (res *Resource[T, P]) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := res.id(w, r)
	if !ok {
		return
	}
	_, err := res.Service.Delete(r.Context(), id)
	if err == nil {
		http.Redirect(w, r, "/"+res.Path, http.StatusSeeOther)
		return
	}

	var rerr *service.ReferentialError
	if errors.As(err, &rerr) {
		res.renderDelete(w, r, http.StatusConflict, id, rerr.Message)
		return
	}
	res.site.fail(w, r, err)
}

func (res *Resource[T, P]) renderDelete(w http.ResponseWriter, r *http.Request, status, id int, msg string) {
	item, err := res.Service.Get(r.Context(), id)
	if err != nil {
		res.site.fail(w, r, err)
		return
	}
	deps, err := res.Service.Dependents(r.Context(), id)
	if err != nil {
		res.site.fail(w, r, err)
		return
	}

	body := deleteBody{Path: res.Path, ID: id, Pairs: res.pairs((*T)(item)), Cascade: res.Cascade, Error: msg}
	for _, d := range deps {
		if d.Count > 0 {
			body.Dependents = append(body.Dependents, dependentView{Title: tableTitles[d.Table], Count: d.Count})
		}
	}
	res.site.render(w, r, status, "delete", res.Title, body)
}

func (res *Resource[T, P]) renderForm(w http.ResponseWriter, r *http.Request, status, id int, form *service.Form[T]) {
	body := formBody{
		Path:    res.Path,
		ID:      id,
		Action:  "/" + res.Path + "/create",
		Version: form.Values.Get("version"),
		Error:   form.Error,
	}
	if id > 0 {
		body.Action = "/" + res.Path + "/" + strconv.Itoa(id) + "/edit"
	}

	for _, f := range res.Fields {
		fv := fieldView{Field: f, Value: form.Values.Get(f.Name)}
		if f.Type == "password" {
			fv.Value = ""
			fv.Required = f.Required && id == 0
		}
		if f.Lookup != "" {
			for _, o := range form.Lookups[f.Lookup] {
				value := strconv.Itoa(o.ID)
				fv.Options = append(fv.Options, optionView{Value: value, Label: o.Label, Selected: value == fv.Value})
			}
		}
		body.Fields = append(body.Fields, fv)
	}
	res.site.render(w, r, status, "form", res.Title, body)
}

// id разбирает идентификатор из пути; неразборчивый идентификатор дает 404.
func (res *Resource[T, P]) id(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		res.site.notFound(w, r)
		return 0, false
	}
	return id, true
}

func (res *Resource[T, P]) cells(item *T) []string {
	out := make([]string, len(res.Columns))
	for i, c := range res.Columns {
		out[i] = c.Value(item)
	}
	return out
}

func (res *Resource[T, P]) pairs(item *T) []pair {
	out := make([]pair, len(res.Columns))
	for i, c := range res.Columns {
		out[i] = pair{Label: c.Title, Value: c.Value(item)}
	}
	return out
}
