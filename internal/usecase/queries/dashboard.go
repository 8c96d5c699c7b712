package queries

import (
	"context"

	"cleanpro-api/internal/pkg/errs"
)

type DashboardQueries interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardQueriesImpl struct {
	bookings      BookingQueries
	availability  AvailabilityQueries
	notifications NotificationReadStore
}

func NewDashboardQueries(bookings BookingQueries, avail AvailabilityQueries, notifications NotificationReadStore) DashboardQueries {
	return &dashboardQueriesImpl{
		bookings:      bookings,
		availability:  avail,
		notifications: notifications,
	}
}

func (q *dashboardQueriesImpl) Stats(ctx context.Context) (*DashboardStats, error) {
	bookingStats, err := q.bookings.Stats(ctx)
	if err != nil {
		return nil, err
	}
	availStats, err := q.availability.Stats(ctx)
	if err != nil {
		return nil, err
	}
	unread, err := q.notifications.CountUnread(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to count unread notifications")
	}

	return &DashboardStats{
		Bookings:     *bookingStats,
		Availability: *availStats,
		UnreadNotice: unread,
	}, nil
}
