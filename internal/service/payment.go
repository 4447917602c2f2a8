package service

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"japantune/internal/model"
)

type PaymentRules struct {
	refs Refs
	now  func() time.Time
}

func NewPaymentRules(refs Refs) *PaymentRules {
	return &PaymentRules{refs: refs, now: time.Now}
}

func (r *PaymentRules) Lookups() []model.LookupKind {
	return []model.LookupKind{model.LookupUsers}
}

// Bind: дата платежа ставится текущей при создании и дальше не меняется.
func (r *PaymentRules) Bind(ctx context.Context, form url.Values, dst *model.Payment, isNew bool) error {
	f := newFormReader(form)
	dst.Price = f.positiveDecimal("price")
	dst.PayMethod = f.required("payMethod")
	dst.UserID = f.positiveInt("userId")
	if f.failed() {
		return invalid(form, MsgInvalidInput)
	}
	if isNew {
		dst.PaymentDate = today(r.now())
	}
	if err := checkStruct(form, dst); err != nil {
		return err
	}
	return requireRefs(ctx, r.refs, form, target{model.TableUsers, dst.UserID})
}

func (r *PaymentRules) Values(p *model.Payment) url.Values {
	return url.Values{
		"price":       {p.Price.StringFixed(2)},
		"payMethod":   {p.PayMethod},
		"paymentDate": {formatDate(p.PaymentDate)},
		"userId":      {strconv.Itoa(p.UserID)},
	}
}
