package service

import (
	"context"
	"net/url"
	"strconv"

	"japantune/internal/model"
)

type MaterialRules struct {
	refs Refs
}

func NewMaterialRules(refs Refs) *MaterialRules {
	return &MaterialRules{refs: refs}
}

func (r *MaterialRules) Lookups() []model.LookupKind {
	return []model.LookupKind{model.LookupSuppliers}
}

// Bind: цена больше нуля, количество не отрицательное, поставщик существует.
func (r *MaterialRules) Bind(ctx context.Context, form url.Values, dst *model.Material, _ bool) error {
	f := newFormReader(form)
	dst.Title = f.required("title")
	dst.Price = f.positiveDecimal("price")
	dst.Quantity = f.int("quantity")
	dst.SupplierID = f.positiveInt("supplierId")
	if f.failed() || dst.Quantity < 0 {
		return invalid(form, MsgInvalidInput)
	}
	if err := checkStruct(form, dst); err != nil {
		return err
	}
	return requireRefs(ctx, r.refs, form, target{model.TableSuppliers, dst.SupplierID})
}

func (r *MaterialRules) Values(m *model.Material) url.Values {
	return url.Values{
		"title":      {m.Title},
		"price":      {m.Price.StringFixed(2)},
		"quantity":   {strconv.Itoa(m.Quantity)},
		"supplierId": {strconv.Itoa(m.SupplierID)},
	}
}
