package service

import (
	"context"
	"net/url"
	"strconv"

	"japantune/internal/model"
)

// Границы оценки отзыва.
const (
	MinRating = 1
	MaxRating = 5
)

type ReviewRules struct {
	refs Refs
}

func NewReviewRules(refs Refs) *ReviewRules {
	return &ReviewRules{refs: refs}
}

func (r *ReviewRules) Lookups() []model.LookupKind {
	return []model.LookupKind{model.LookupUsers}
}

func (r *ReviewRules) Bind(ctx context.Context, form url.Values, dst *model.Review, _ bool) error {
	f := newFormReader(form)
	dst.Title = f.optional("title")
	dst.Rating = f.int("rating")
	dst.ReviewDate = f.date("reviewDate")
	dst.UserID = f.positiveInt("userId")
	if f.failed() {
		return invalid(form, MsgInvalidInput)
	}
	if dst.Rating < MinRating || dst.Rating > MaxRating {
		return invalid(form, MsgRatingRange)
	}
	if err := checkStruct(form, dst); err != nil {
		return err
	}
	return requireRefs(ctx, r.refs, form, target{model.TableUsers, dst.UserID})
}

func (r *ReviewRules) Values(rv *model.Review) url.Values {
	return url.Values{
		"title":      {formatOptional(rv.Title)},
		"rating":     {strconv.Itoa(rv.Rating)},
		"reviewDate": {formatDate(rv.ReviewDate)},
		"userId":     {strconv.Itoa(rv.UserID)},
	}
}
