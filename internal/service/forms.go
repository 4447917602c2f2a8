package service

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"japantune/internal/model"

	"github.com/shopspring/decimal"
)

// formReader читает поля формы и запоминает, что хотя бы одно не разобралось.
// Ошибки не привязываются к полям: вызывающий код выдает одно общее сообщение.
type formReader struct {
	values url.Values
	bad    bool
}

func newFormReader(values url.Values) *formReader {
	return &formReader{values: values}
}

func (f *formReader) failed() bool { return f.bad }

func (f *formReader) fail() { f.bad = true }

func (f *formReader) text(key string) string {
	return strings.TrimSpace(f.values.Get(key))
}

func (f *formReader) required(key string) string {
	v := f.text(key)
	if v == "" {
		f.bad = true
	}
	return v
}

func (f *formReader) optional(key string) *string {
	v := f.text(key)
	if v == "" {
		return nil
	}
	return &v
}

func (f *formReader) int(key string) int {
	n, err := strconv.Atoi(f.text(key))
	if err != nil {
		f.bad = true
	}
	return n
}

// positiveInt разбирает идентификатор связанной записи.
func (f *formReader) positiveInt(key string) int {
	n := f.int(key)
	if n <= 0 {
		f.bad = true
	}
	return n
}

// optionalInt: пустое значение и "0" означают отсутствие.
func (f *formReader) optionalInt(key string) int {
	v := f.text(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		f.bad = true
		return 0
	}
	return n
}

func (f *formReader) positiveDecimal(key string) decimal.Decimal {
	d, err := decimal.NewFromString(f.text(key))
	if err != nil || !d.IsPositive() {
		f.bad = true
	}
	return d
}

func (f *formReader) date(key string) time.Time {
	t, err := time.Parse(model.DateLayout, f.text(key))
	if err != nil {
		f.bad = true
	}
	return t
}

// version возвращает токен версии из формы; ok=false, если поля нет.
func (f *formReader) version() (v int, ok bool) {
	raw := f.text("version")
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(model.DateLayout)
}

func formatOptional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
