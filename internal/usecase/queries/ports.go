package queries

import (
	"context"

	"cleanpro-api/internal/domain/availability"
	"cleanpro-api/internal/pkg/calendar"

	"github.com/google/uuid"
)

// Read-side store contracts. Implementations must compute every answer from
// current state on each call; returning a snapshot cached across mutations
// would break the read-after-write guarantee the admin panel relies on.

type BookingReadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// List returns bookings in insertion order (created_at ascending).
	List(ctx context.Context) ([]*BookingView, error)
	ListByStatus(ctx context.Context, status string) ([]*BookingView, error)
	// ListByDay returns bookings for a day, most recently created first.
	ListByDay(ctx context.Context, day calendar.Day) ([]*BookingView, error)
	DaysByStatus(ctx context.Context, status string) ([]calendar.Day, error)
	CountsByStatus(ctx context.Context) (map[string]int, error)
}

type AvailabilityReadStore interface {
	ListAll(ctx context.Context) ([]*availability.Override, error)
}

type NotificationReadStore interface {
	ListRecent(ctx context.Context, limit int) ([]*NotificationView, error)
	CountUnread(ctx context.Context) (int, error)
}

type SliderReadStore interface {
	// List returns images ordered by position. activeOnly filters to the
	// ones the public site should show.
	List(ctx context.Context, activeOnly bool) ([]*SliderImageView, error)
}
