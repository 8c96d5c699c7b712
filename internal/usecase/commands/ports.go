package commands

import (
	"context"
	"time"

	"cleanpro-api/internal/domain/availability"
	"cleanpro-api/internal/domain/booking"
	"cleanpro-api/internal/domain/slider"
	"cleanpro-api/internal/pkg/calendar"

	"github.com/google/uuid"
)

// Write-side repository contracts. Implementations signal failures with
// infra.RepositoryError kinds; the commands translate those into the
// sentinel errors handlers switch on.

type BookingRepository interface {
	Insert(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// UpdateStatus persists a transition guarded by the status the caller
	// read (conditional write). A concurrent transition that already moved
	// the booking away from expected surfaces as KindConflict.
	UpdateStatus(ctx context.Context, b *booking.Booking, expected booking.Status) error
}

type AvailabilityRepository interface {
	// Save stores the override, replacing any existing record for the same
	// calendar day while keeping the stored identity.
	Save(ctx context.Context, o *availability.Override) error
	FindByDay(ctx context.Context, day calendar.Day) (*availability.Override, error)
	ListAll(ctx context.Context) ([]*availability.Override, error)
	// Delete is idempotent; removing an absent day is not an error.
	Delete(ctx context.Context, day calendar.Day) error
	DeleteAll(ctx context.Context) error
}

// FeedEntry is the write-side record for the admin notification feed.
type FeedEntry struct {
	ID        uuid.UUID
	Kind      string
	Title     string
	Message   string
	BookingID *uuid.UUID
	CreatedAt time.Time
}

const (
	FeedKindBookingCreated   = "booking_created"
	FeedKindBookingConfirmed = "booking_confirmed"
	FeedKindBookingCancelled = "booking_cancelled"
	FeedKindBookingCompleted = "booking_completed"
)

type NotificationRepository interface {
	Insert(ctx context.Context, entry FeedEntry) error
	MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error
	MarkAllRead(ctx context.Context, readAt time.Time) error
}

type SliderRepository interface {
	Insert(ctx context.Context, img *slider.Image) error
	FindByID(ctx context.Context, id uuid.UUID) (*slider.Image, error)
	Update(ctx context.Context, img *slider.Image) error
	Delete(ctx context.Context, id uuid.UUID) error
	NextPosition(ctx context.Context) (int, error)
}
