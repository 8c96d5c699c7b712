package booking

import (
	"errors"
	"time"

	"cleanpro-api/internal/pkg/calendar"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrDayRequired       = errors.New("booking day is required")
	ErrServiceRequired   = errors.New("booking service is required")
)

// Booking is a single customer request to perform a service on one calendar
// day. The day never changes after creation; rescheduling is cancel + new
// booking.
type Booking struct {
	id               uuid.UUID
	day              calendar.Day
	serviceID        string
	serviceName      string
	client           ClientInfo
	note             Note
	status           Status
	notificationSent bool
	createdAt        time.Time
	confirmedAt      *time.Time
}

func NewBooking(day calendar.Day, serviceID, serviceName string, client ClientInfo, note Note, now time.Time) (*Booking, error) {
	if day.IsZero() {
		return nil, ErrDayRequired
	}
	if serviceID == "" || serviceName == "" {
		return nil, ErrServiceRequired
	}

	return &Booking{
		id:          uuid.New(),
		day:         day,
		serviceID:   serviceID,
		serviceName: serviceName,
		client:      client,
		note:        note,
		status:      StatusPending,
		createdAt:   now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	day calendar.Day,
	serviceID, serviceName string,
	client ClientInfo,
	note Note,
	status Status,
	notificationSent bool,
	createdAt time.Time,
	confirmedAt *time.Time,
) *Booking {
	return &Booking{
		id:               id,
		day:              day,
		serviceID:        serviceID,
		serviceName:      serviceName,
		client:           client,
		note:             note,
		status:           status,
		notificationSent: notificationSent,
		createdAt:        createdAt,
		confirmedAt:      confirmedAt,
	}
}

// TransitionTo applies a lifecycle edge. confirmedAt is set exactly once, on
// the pending→confirmed edge, and the client-notification flag flips as part
// of the same update.
func (b *Booking) TransitionTo(to Status, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(to) {
		return ErrInvalidTransition
	}

	b.status = to
	if to == StatusConfirmed {
		t := now
		b.confirmedAt = &t
	}
	b.notificationSent = true
	return nil
}

func (b *Booking) IsPending() bool {
	return b.status == StatusPending
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) Day() calendar.Day      { return b.day }
func (b *Booking) ServiceID() string      { return b.serviceID }
func (b *Booking) ServiceName() string    { return b.serviceName }
func (b *Booking) Client() ClientInfo     { return b.client }
func (b *Booking) Note() Note             { return b.note }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) NotificationSent() bool { return b.notificationSent }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) ConfirmedAt() *time.Time {
	return b.confirmedAt
}

// ShortCode is the human-friendly reference used in WhatsApp messages and the
// admin panel: the last 6 characters of the id.
func (b *Booking) ShortCode() string {
	return ShortCode(b.id)
}

func ShortCode(id uuid.UUID) string {
	s := id.String()
	return s[len(s)-6:]
}
