package service

import (
	"context"
	"net/url"

	"japantune/internal/validator"
)

// target - ссылка на запись таблицы.
type target struct {
	table string
	id    int
}

// requireRefs проверяет, что все указанные связанные записи существуют.
func requireRefs(ctx context.Context, refs Refs, form url.Values, targets ...target) error {
	for _, t := range targets {
		ok, err := refs.Exists(ctx, t.table, t.id)
		if err != nil {
			return err
		}
		if !ok {
			return invalid(form, MsgMissingRef)
		}
	}
	return nil
}

// checkStruct применяет ограничения тегов модели (длины, обязательность).
func checkStruct(form url.Values, item any) error {
	if err := validator.ValidateStruct(item); err != nil {
		return invalid(form, MsgInvalidInput)
	}
	return nil
}
