package queries

import (
	"time"

	"cleanpro-api/internal/pkg/calendar"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID               uuid.UUID    `json:"id"`
	ShortCode        string       `json:"short_code"`
	Day              calendar.Day `json:"date"`
	ServiceID        string       `json:"service_id"`
	ServiceName      string       `json:"service_name"`
	ClientName       string       `json:"client_name"`
	ClientPhone      string       `json:"client_phone"`
	ClientEmail      string       `json:"client_email,omitempty"`
	ClientAddress    string       `json:"client_address"`
	Notes            string       `json:"notes,omitempty"`
	Status           string       `json:"status"`
	NotificationSent bool         `json:"notification_sent"`
	CreatedAt        time.Time    `json:"created_at"`
	ConfirmedAt      *time.Time   `json:"confirmed_at,omitempty"`
}

type OverrideView struct {
	ID          uuid.UUID    `json:"id"`
	Day         calendar.Day `json:"date"`
	IsAvailable bool         `json:"is_available"`
	Reason      string       `json:"reason,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// DayDecision is the availability answer for one calendar day, override and
// default rules already applied.
type DayDecision struct {
	Day       calendar.Day `json:"date"`
	Available bool         `json:"available"`
	Reason    string       `json:"reason,omitempty"`
}

type NotificationView struct {
	ID        uuid.UUID  `json:"id"`
	Kind      string     `json:"kind"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	BookingID *uuid.UUID `json:"booking_id,omitempty"`
	IsRead    bool       `json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}

type SliderImageView struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	Position  int       `json:"position"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Completed int `json:"completed"`
}

type AvailabilityStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Unavailable int `json:"unavailable"`
}

type DashboardStats struct {
	Bookings     BookingStats      `json:"bookings"`
	Availability AvailabilityStats `json:"availability"`
	UnreadNotice int               `json:"unread_notifications"`
}
