//go:build unit

package booking_test

import (
	"testing"
	"time"

	"cleanpro-api/internal/domain/booking"
	"cleanpro-api/internal/pkg/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClient(t *testing.T) booking.ClientInfo {
	t.Helper()
	client, err := booking.NewClientInfo("Maria Silva", "(53) 99911-2233", "maria@example.com", "Rua das Flores 120")
	require.NoError(t, err)
	return client
}

func newPending(t *testing.T) *booking.Booking {
	t.Helper()
	day, _ := calendar.ParseDay("2025-03-10")
	b, err := booking.NewBooking(day, "residencial", "Limpeza Residencial", validClient(t), booking.NewNote(""), time.Now())
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	b := newPending(t)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.False(t, b.NotificationSent())
	assert.Nil(t, b.ConfirmedAt())
	assert.Len(t, b.ShortCode(), 6)
}

func TestNewClientInfoValidation(t *testing.T) {
	cases := []struct {
		name    string
		cname   string
		phone   string
		address string
		errIs   error
	}{
		{name: "valid", cname: "Maria", phone: "53999112233", address: "Rua A"},
		{name: "missing name", cname: "  ", phone: "53999112233", address: "Rua A", errIs: booking.ErrNameRequired},
		{name: "missing phone", cname: "Maria", phone: "", address: "Rua A", errIs: booking.ErrPhoneRequired},
		{name: "short phone", cname: "Maria", phone: "123456", address: "Rua A", errIs: booking.ErrPhoneTooShort},
		{name: "missing address", cname: "Maria", phone: "53999112233", address: "", errIs: booking.ErrAddressRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewClientInfo(tc.cname, tc.phone, "", tc.address)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTransitionConfirm(t *testing.T) {
	b := newPending(t)
	now := time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)

	require.NoError(t, b.TransitionTo(booking.StatusConfirmed, now))

	assert.Equal(t, booking.StatusConfirmed, b.Status())
	require.NotNil(t, b.ConfirmedAt())
	assert.Equal(t, now, *b.ConfirmedAt())
	assert.True(t, b.NotificationSent())
}

func TestTransitionCancelLeavesConfirmedAtUnset(t *testing.T) {
	b := newPending(t)

	require.NoError(t, b.TransitionTo(booking.StatusCancelled, time.Now()))

	assert.Equal(t, booking.StatusCancelled, b.Status())
	assert.Nil(t, b.ConfirmedAt())
	assert.True(t, b.NotificationSent())
}

func TestTransitionRejectsResolvedBookings(t *testing.T) {
	cases := []struct {
		name  string
		first booking.Status
		then  booking.Status
	}{
		{name: "confirm then confirm", first: booking.StatusConfirmed, then: booking.StatusConfirmed},
		{name: "confirm then cancel", first: booking.StatusConfirmed, then: booking.StatusCancelled},
		{name: "cancel then confirm", first: booking.StatusCancelled, then: booking.StatusConfirmed},
		{name: "cancel then complete", first: booking.StatusCancelled, then: booking.StatusCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newPending(t)
			require.NoError(t, b.TransitionTo(tc.first, time.Now()))
			assert.ErrorIs(t, b.TransitionTo(tc.then, time.Now()), booking.ErrInvalidTransition)
		})
	}
}

func TestCompletedOnlyFromConfirmed(t *testing.T) {
	b := newPending(t)
	assert.ErrorIs(t, b.TransitionTo(booking.StatusCompleted, time.Now()), booking.ErrInvalidTransition)

	require.NoError(t, b.TransitionTo(booking.StatusConfirmed, time.Now()))
	assert.NoError(t, b.TransitionTo(booking.StatusCompleted, time.Now()))
}

func TestPhoneDigits(t *testing.T) {
	assert.Equal(t, "5399911223", booking.PhoneDigits("(53) 9991-1223"))
	assert.Equal(t, "553312345678", booking.PhoneDigits("+55 33 1234-5678"))
}
