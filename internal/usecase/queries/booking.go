package queries

import (
	"context"

	"cleanpro-api/internal/domain/booking"
	"cleanpro-api/internal/infra"
	"cleanpro-api/internal/pkg/calendar"
	"cleanpro-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, status string) ([]*BookingView, error)
	// FindByDay resolves the most relevant booking for a day: the most
	// recently created one, regardless of status.
	FindByDay(ctx context.Context, day calendar.Day) (*BookingView, error)
	ConfirmedDays(ctx context.Context) ([]calendar.Day, error)
	PendingDays(ctx context.Context) ([]calendar.Day, error)
	Stats(ctx context.Context) (*BookingStats, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to get booking")
	}
	return view, nil
}

// ListBookings returns every booking when status is empty, otherwise only the
// matching ones; insertion order either way.
func (q *bookingQueriesImpl) ListBookings(ctx context.Context, status string) ([]*BookingView, error) {
	if status == "" {
		views, err := q.store.List(ctx)
		return views, errs.Wrap(err, "failed to list bookings")
	}
	views, err := q.store.ListByStatus(ctx, status)
	return views, errs.Wrap(err, "failed to list bookings by status")
}

func (q *bookingQueriesImpl) FindByDay(ctx context.Context, day calendar.Day) (*BookingView, error) {
	views, err := q.store.ListByDay(ctx, day)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find booking by day")
	}
	if len(views) == 0 {
		return nil, ErrBookingNotFound
	}
	return views[0], nil
}

func (q *bookingQueriesImpl) ConfirmedDays(ctx context.Context) ([]calendar.Day, error) {
	days, err := q.store.DaysByStatus(ctx, booking.StatusConfirmed.String())
	return days, errs.Wrap(err, "failed to list confirmed days")
}

func (q *bookingQueriesImpl) PendingDays(ctx context.Context) ([]calendar.Day, error) {
	days, err := q.store.DaysByStatus(ctx, booking.StatusPending.String())
	return days, errs.Wrap(err, "failed to list pending days")
}

func (q *bookingQueriesImpl) Stats(ctx context.Context) (*BookingStats, error) {
	counts, err := q.store.CountsByStatus(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to count bookings")
	}

	stats := &BookingStats{
		Pending:   counts[booking.StatusPending.String()],
		Confirmed: counts[booking.StatusConfirmed.String()],
		Cancelled: counts[booking.StatusCancelled.String()],
		Completed: counts[booking.StatusCompleted.String()],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}
