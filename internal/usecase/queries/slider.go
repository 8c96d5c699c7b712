package queries

import (
	"context"

	"cleanpro-api/internal/pkg/errs"
)

type SliderQueries interface {
	// ListImages returns all slider images for the admin surface, or only
	// the active ones for the public site.
	ListImages(ctx context.Context, activeOnly bool) ([]*SliderImageView, error)
}

type sliderQueriesImpl struct {
	store SliderReadStore
}

func NewSliderQueries(store SliderReadStore) SliderQueries {
	return &sliderQueriesImpl{store: store}
}

func (q *sliderQueriesImpl) ListImages(ctx context.Context, activeOnly bool) ([]*SliderImageView, error) {
	views, err := q.store.List(ctx, activeOnly)
	return views, errs.Wrap(err, "failed to list slider images")
}
