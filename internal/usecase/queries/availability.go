package queries

import (
	"context"

	"cleanpro-api/internal/domain/availability"
	"cleanpro-api/internal/pkg/calendar"
	"cleanpro-api/internal/pkg/clock"
	"cleanpro-api/internal/pkg/errs"
)

type AvailabilityQueries interface {
	// CheckDay evaluates one calendar day against the current override set
	// and the default rules.
	CheckDay(ctx context.Context, day calendar.Day) (*DayDecision, error)
	ListOverrides(ctx context.Context) ([]*OverrideView, error)
	// Stats counts explicit overrides only; it never enumerates the
	// calendar itself.
	Stats(ctx context.Context) (*AvailabilityStats, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
	clock clock.Clock
}

func NewAvailabilityQueries(store AvailabilityReadStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, clock: clk}
}

func (q *availabilityQueriesImpl) CheckDay(ctx context.Context, day calendar.Day) (*DayDecision, error) {
	overrides, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load availability overrides")
	}

	decision := availability.Evaluate(day, clock.Today(q.clock), availability.NewOverrideSet(overrides))
	return &DayDecision{
		Day:       day,
		Available: decision.Available,
		Reason:    decision.Reason,
	}, nil
}

func (q *availabilityQueriesImpl) ListOverrides(ctx context.Context) ([]*OverrideView, error) {
	overrides, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list availability overrides")
	}

	views := make([]*OverrideView, len(overrides))
	for i, o := range overrides {
		views[i] = OverrideToView(o)
	}
	return views, nil
}

func (q *availabilityQueriesImpl) Stats(ctx context.Context) (*AvailabilityStats, error) {
	overrides, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load availability overrides")
	}

	stats := &AvailabilityStats{Total: len(overrides)}
	for _, o := range overrides {
		if o.IsAvailable() {
			stats.Available++
		} else {
			stats.Unavailable++
		}
	}
	return stats, nil
}

func OverrideToView(o *availability.Override) *OverrideView {
	return &OverrideView{
		ID:          o.ID(),
		Day:         o.Day(),
		IsAvailable: o.IsAvailable(),
		Reason:      o.Reason(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}
