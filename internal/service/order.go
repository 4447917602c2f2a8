package service

import (
	"context"
	"net/url"
	"strconv"

	"japantune/internal/model"
)

type OrderRules struct {
	refs Refs
}

func NewOrderRules(refs Refs) *OrderRules {
	return &OrderRules{refs: refs}
}

func (r *OrderRules) Lookups() []model.LookupKind {
	return []model.LookupKind{model.LookupUsers, model.LookupMaterials, model.LookupPayments, model.LookupReviews}
}

func (r *OrderRules) Bind(ctx context.Context, form url.Values, dst *model.Order, _ bool) error {
	f := newFormReader(form)
	dst.OrderDate = f.date("orderDate")
	dst.Status = f.required("status")
	dst.UserID = f.positiveInt("userId")
	dst.MaterialID = f.positiveInt("materialId")
	dst.PaymentID = f.positiveInt("paymentId")
	reviewID := f.optionalInt("reviewId")
	if f.failed() {
		return invalid(form, MsgInvalidInput)
	}

	targets := []target{
		{model.TableUsers, dst.UserID},
		{model.TableMaterials, dst.MaterialID},
		{model.TablePayments, dst.PaymentID},
	}
	dst.ReviewID = nil
	if reviewID > 0 {
		dst.ReviewID = &reviewID
		targets = append(targets, target{model.TableReviews, reviewID})
	}

	if err := checkStruct(form, dst); err != nil {
		return err
	}
	return requireRefs(ctx, r.refs, form, targets...)
}

func (r *OrderRules) Values(o *model.Order) url.Values {
	values := url.Values{
		"orderDate":  {formatDate(o.OrderDate)},
		"status":     {o.Status},
		"userId":     {strconv.Itoa(o.UserID)},
		"materialId": {strconv.Itoa(o.MaterialID)},
		"paymentId":  {strconv.Itoa(o.PaymentID)},
		"reviewId":   {""},
	}
	if o.ReviewID != nil {
		values.Set("reviewId", strconv.Itoa(*o.ReviewID))
	}
	return values
}
