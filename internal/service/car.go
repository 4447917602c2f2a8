package service

import (
	"context"
	"net/url"
	"strconv"

	"japantune/internal/model"
)

// Допустимый диапазон года выпуска.
const (
	MinReleaseYear = 1900
	MaxReleaseYear = 2100
)

type CarRules struct {
	refs Refs
}

func NewCarRules(refs Refs) *CarRules {
	return &CarRules{refs: refs}
}

func (r *CarRules) Lookups() []model.LookupKind {
	return []model.LookupKind{model.LookupUsers}
}

func (r *CarRules) Bind(ctx context.Context, form url.Values, dst *model.Car, _ bool) error {
	f := newFormReader(form)
	dst.Mark = f.required("mark")
	dst.Model = f.required("model")
	dst.ReleaseYear = f.int("releaseYear")
	dst.LicensePlate = f.optional("licensePlate")
	dst.UserID = f.positiveInt("userId")
	if f.failed() {
		return invalid(form, MsgInvalidInput)
	}
	if dst.ReleaseYear < MinReleaseYear || dst.ReleaseYear > MaxReleaseYear {
		return invalid(form, MsgReleaseYear)
	}
	if err := checkStruct(form, dst); err != nil {
		return err
	}
	return requireRefs(ctx, r.refs, form, target{model.TableUsers, dst.UserID})
}

func (r *CarRules) Values(c *model.Car) url.Values {
	return url.Values{
		"mark":         {c.Mark},
		"model":        {c.Model},
		"releaseYear":  {strconv.Itoa(c.ReleaseYear)},
		"licensePlate": {formatOptional(c.LicensePlate)},
		"userId":       {strconv.Itoa(c.UserID)},
	}
}
