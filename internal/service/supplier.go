package service

import (
	"context"
	"net/url"

	"japantune/internal/model"
)

type SupplierRules struct{}

func NewSupplierRules() *SupplierRules {
	return &SupplierRules{}
}

func (r *SupplierRules) Lookups() []model.LookupKind { return nil }

func (r *SupplierRules) Bind(_ context.Context, form url.Values, dst *model.Supplier, _ bool) error {
	f := newFormReader(form)
	dst.Title = f.required("title")
	dst.Country = f.required("country")
	if f.failed() {
		return invalid(form, MsgInvalidInput)
	}
	return checkStruct(form, dst)
}

func (r *SupplierRules) Values(s *model.Supplier) url.Values {
	return url.Values{
		"title":   {s.Title},
		"country": {s.Country},
	}
}
