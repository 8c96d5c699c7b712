package availability

import (
	"errors"
	"time"

	"cleanpro-api/internal/pkg/calendar"

	"github.com/google/uuid"
)

var ErrDayRequired = errors.New("override day is required")

// Override is an explicit admin-set availability value for one calendar day.
// At most one override exists per day; writing the same day again updates the
// existing record in place.
type Override struct {
	id          uuid.UUID
	day         calendar.Day
	isAvailable bool
	reason      string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewOverride(day calendar.Day, isAvailable bool, reason string, now time.Time) (*Override, error) {
	if day.IsZero() {
		return nil, ErrDayRequired
	}
	o := &Override{
		id:        uuid.New(),
		day:       day,
		createdAt: now,
	}
	o.apply(isAvailable, reason, now)
	return o, nil
}

func ReconstructOverride(id uuid.UUID, day calendar.Day, isAvailable bool, reason string, createdAt, updatedAt time.Time) *Override {
	return &Override{
		id:          id,
		day:         day,
		isAvailable: isAvailable,
		reason:      reason,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update rewrites the override value keeping the same id and createdAt.
func (o *Override) Update(isAvailable bool, reason string, now time.Time) {
	o.apply(isAvailable, reason, now)
}

func (o *Override) apply(isAvailable bool, reason string, now time.Time) {
	o.isAvailable = isAvailable
	if isAvailable {
		// A reason is only meaningful for blocked days.
		o.reason = ""
	} else {
		o.reason = reason
	}
	o.updatedAt = now
}

func (o *Override) ID() uuid.UUID         { return o.id }
func (o *Override) Day() calendar.Day     { return o.day }
func (o *Override) IsAvailable() bool     { return o.isAvailable }
func (o *Override) Reason() string        { return o.reason }
func (o *Override) CreatedAt() time.Time  { return o.createdAt }
func (o *Override) UpdatedAt() time.Time  { return o.updatedAt }
