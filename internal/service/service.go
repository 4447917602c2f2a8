package service

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"

	"japantune/internal/model"
	"japantune/internal/repository"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=service.go -destination=./mocks/service_mock.go -package=mocks

// Store - хранилище одной сущности.
type Store[T any, P repository.Record[T]] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (P, error)
	Create(ctx context.Context, item P) error
	Update(ctx context.Context, item P) error
	Delete(ctx context.Context, id int) error
}

// Refs - проверки, нужные правилам разбора форм.
type Refs interface {
	Exists(ctx context.Context, table string, id int) (bool, error)
	FirstID(ctx context.Context, table string) (int, error)
	Taken(ctx context.Context, table, column, value string, exceptID int) (bool, error)
}

// Catalog - справочники и подсчет зависимых записей.
type Catalog interface {
	Refs
	Options(ctx context.Context, kind model.LookupKind) ([]model.Option, error)
	CountReferences(ctx context.Context, table string, id int) ([]model.DependentCount, error)
}

// Cascader удаляет запись вместе с зависимыми в одной транзакции.
type Cascader interface {
	Delete(ctx context.Context, owner model.Ownership, id int) (int64, error)
}

// Publisher отправляет события аудита.
type Publisher interface {
	Publish(ctx context.Context, event model.AuditEvent) error
}

// Rules - правила разбора формы для сущности T.
type Rules[T any] interface {
	// Bind переносит значения формы в dst. isNew - создание новой записи.
	// Ошибка проверки данных - *ValidationError.
	Bind(ctx context.Context, form url.Values, dst *T, isNew bool) error
	// Values возвращает значения формы для редактирования записи.
	Values(item *T) url.Values
	// Lookups перечисляет справочники, нужные форме.
	Lookups() []model.LookupKind
}

// Form - все, что нужно для отрисовки формы создания или редактирования.
type Form[T any] struct {
	Item    *T // nil для новой записи
	Values  url.Values
	Lookups map[model.LookupKind][]model.Option
	Error   string
}

// Option настраивает Service.
type Option func(*settings)

type settings struct {
	cascade   Cascader
	owner     *model.Ownership
	publisher Publisher
}

// WithCascade включает каскадное удаление по графу owner.
func WithCascade(c Cascader, owner model.Ownership) Option {
	return func(s *settings) {
		s.cascade = c
		s.owner = &owner
	}
}

// WithPublisher включает отправку событий аудита.
func WithPublisher(p Publisher) Option {
	return func(s *settings) { s.publisher = p }
}

// Service - CRUD одной сущности: разбор форм, сохранение, каскадное удаление и аудит.
type Service[T any, P repository.Record[T]] struct {
	table   string
	store   Store[T, P]
	rules   Rules[T]
	catalog Catalog
	settings
	tracer trace.Tracer
}

// New создает сервис сущности, хранящейся в таблице table.
func New[T any, P repository.Record[T]](table string, store Store[T, P], rules Rules[T], catalog Catalog, opts ...Option) *Service[T, P] {
	s := &Service[T, P]{
		table:   table,
		store:   store,
		rules:   rules,
		catalog: catalog,
		tracer:  otel.Tracer("service"),
	}
	for _, opt := range opts {
		opt(&s.settings)
	}
	return s
}

// Table возвращает имя таблицы сущности.
func (s *Service[T, P]) Table() string {
	return s.table
}

// List возвращает все записи со связанными данными.
func (s *Service[T, P]) List(ctx context.Context) ([]T, error) {
	return s.store.List(ctx)
}

// Get возвращает запись или ErrNotFound.
func (s *Service[T, P]) Get(ctx context.Context, id int) (P, error) {
	return s.store.Get(ctx, id)
}

// Create разбирает форму и сохраняет новую запись. При ошибке проверки
// хранилище не затрагивается.
func (s *Service[T, P]) Create(ctx context.Context, form url.Values) (P, error) {
	ctx, span := s.tracer.Start(ctx, "Service.Create "+s.table)
	defer span.End()

	item := P(new(T))
	if err := s.rules.Bind(ctx, form, (*T)(item), true); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, item); err != nil {
		return nil, s.storeFailure("create", 0, form, err)
	}

	s.publish(ctx, model.ActionCreate, item.Key(), 0)
	return item, nil
}

// Update загружает запись, переносит в нее изменяемые поля формы и сохраняет.
// Если форма несет версию и она устарела, возвращается ErrConflict.
func (s *Service[T, P]) Update(ctx context.Context, id int, form url.Values) (P, error) {
	ctx, span := s.tracer.Start(ctx, "Service.Update "+s.table)
	defer span.End()

	item, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := newFormReader(form).version(); ok {
		if v != item.Revision() {
			log.Warn().Str("table", s.table).Int("id", id).Int("form_version", v).Int("version", item.Revision()).Msg("Форма устарела")
			return nil, ErrConflict
		}
	}

	if err := s.rules.Bind(ctx, form, (*T)(item), false); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, item); err != nil {
		return nil, s.storeFailure("update", id, form, err)
	}

	s.publish(ctx, model.ActionUpdate, id, 0)
	return item, nil
}

// Delete удаляет запись. Для сущностей с графом владения зависимые строки
// удаляются в той же транзакции. Возвращает количество удаленных строк.
func (s *Service[T, P]) Delete(ctx context.Context, id int) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "Service.Delete "+s.table)
	defer span.End()

	var rows int64 = 1
	var err error
	if s.cascade != nil && s.owner != nil {
		rows, err = s.cascade.Delete(ctx, *s.owner, id)
	} else {
		err = s.store.Delete(ctx, id)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, err
		}
		if errors.Is(err, repository.ErrReference) {
			return 0, &ReferentialError{Message: MsgInUse, Err: err}
		}
		log.Error().Err(err).Str("table", s.table).Int("id", id).Msg("Ошибка удаления")
		return 0, &ReferentialError{Message: MsgDeleteFailed, Err: err}
	}

	s.publish(ctx, model.ActionDelete, id, rows)
	return rows, nil
}

// Dependents возвращает количество записей, ссылающихся на запись, по таблицам.
func (s *Service[T, P]) Dependents(ctx context.Context, id int) ([]model.DependentCount, error) {
	return s.catalog.CountReferences(ctx, s.table, id)
}

// NewForm готовит пустую форму создания.
func (s *Service[T, P]) NewForm(ctx context.Context) (*Form[T], error) {
	return s.form(ctx, nil, url.Values{}, "")
}

// EditForm готовит форму редактирования существующей записи.
func (s *Service[T, P]) EditForm(ctx context.Context, id int) (*Form[T], error) {
	item, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	values := s.rules.Values((*T)(item))
	values.Set("version", strconv.Itoa(item.Revision()))
	return s.form(ctx, (*T)(item), values, "")
}

// RetryForm готовит форму для повторного ввода после ошибки cause:
// введенные значения сохраняются, пароли - нет.
func (s *Service[T, P]) RetryForm(ctx context.Context, id int, form url.Values, cause error) (*Form[T], error) {
	var item *T
	values := echo(form)
	if id > 0 {
		existing, err := s.store.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		item = (*T)(existing)
		// После конфликта форма несет введенные значения и текущую версию записи:
		// повторная отправка сознательно перезаписывает чужие изменения.
		if errors.Is(cause, ErrConflict) {
			values.Set("version", strconv.Itoa(existing.Revision()))
		}
	}
	return s.form(ctx, item, values, Message(cause))
}

func (s *Service[T, P]) form(ctx context.Context, item *T, values url.Values, msg string) (*Form[T], error) {
	lookups := make(map[model.LookupKind][]model.Option)
	for _, kind := range s.rules.Lookups() {
		options, err := s.catalog.Options(ctx, kind)
		if err != nil {
			return nil, err
		}
		lookups[kind] = options
	}
	return &Form[T]{Item: item, Values: values, Lookups: lookups, Error: msg}, nil
}

// storeFailure переводит ошибку сохранения в ошибку для пользователя и логирует ее.
func (s *Service[T, P]) storeFailure(op string, id int, form url.Values, err error) error {
	if errors.Is(err, ErrNotFound) {
		return err
	}
	if errors.Is(err, ErrConflict) {
		log.Warn().Err(err).Str("table", s.table).Int("id", id).Msg("Конфликт при сохранении")
		return err
	}
	err = referential(err, form, MsgInUse)
	var rerr *ReferentialError
	if !errors.As(err, &rerr) {
		log.Error().Err(err).Str("table", s.table).Str("op", op).Int("id", id).Msg("Ошибка хранилища")
	}
	return err
}

func (s *Service[T, P]) publish(ctx context.Context, action string, id int, rows int64) {
	if s.publisher == nil {
		return
	}
	event := model.AuditEvent{
		Entity:   s.table,
		EntityID: id,
		Action:   action,
		Actor:    ActorFrom(ctx),
		Rows:     rows,
		At:       time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("table", s.table).Str("action", action).Msg("Не удалось отправить событие аудита")
	}
}
