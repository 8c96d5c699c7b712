//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"cleanpro-api/internal/domain/booking"
	"cleanpro-api/internal/infra/memory"
	"cleanpro-api/internal/pkg/calendar"
	"cleanpro-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeBooking(t *testing.T, store *memory.BookingStore, dateStr string, status booking.Status) *booking.Booking {
	t.Helper()
	ctx := context.Background()

	day, err := calendar.ParseDay(dateStr)
	require.NoError(t, err)
	client, err := booking.NewClientInfo("João Souza", "(53) 98822-1100", "", "Av. Bento 45")
	require.NoError(t, err)
	b, err := booking.NewBooking(day, "comercial", "Limpeza Comercial", client, booking.NewNote(""), time.Now())
	require.NoError(t, err)

	switch status {
	case booking.StatusConfirmed, booking.StatusCancelled:
		require.NoError(t, b.TransitionTo(status, time.Now()))
	case booking.StatusCompleted:
		require.NoError(t, b.TransitionTo(booking.StatusConfirmed, time.Now()))
		require.NoError(t, b.TransitionTo(booking.StatusCompleted, time.Now()))
	}
	require.NoError(t, store.Insert(ctx, b))
	return b
}

func TestBookingQueries_GetBooking(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBookingStore()
	q := queries.NewBookingQueries(store)

	b := storeBooking(t, store, "2025-04-01", booking.StatusPending)

	view, err := q.GetBooking(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, b.ID(), view.ID)
	assert.Equal(t, b.ShortCode(), view.ShortCode)

	_, err = q.GetBooking(ctx, uuid.New())
	assert.ErrorIs(t, err, queries.ErrBookingNotFound)
}

func TestBookingQueries_ListBookingsFiltersByStatus(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBookingStore()
	q := queries.NewBookingQueries(store)

	storeBooking(t, store, "2025-04-01", booking.StatusPending)
	storeBooking(t, store, "2025-04-02", booking.StatusConfirmed)
	storeBooking(t, store, "2025-04-03", booking.StatusPending)

	all, err := q.ListBookings(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending, err := q.ListBookings(ctx, "pending")
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestBookingQueries_FindByDayMostRecentWins(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBookingStore()
	q := queries.NewBookingQueries(store)

	storeBooking(t, store, "2025-04-01", booking.StatusCancelled)
	latest := storeBooking(t, store, "2025-04-01", booking.StatusPending)

	day, _ := calendar.ParseDay("2025-04-01")
	view, err := q.FindByDay(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, latest.ID(), view.ID)

	empty, _ := calendar.ParseDay("2025-04-09")
	_, err = q.FindByDay(ctx, empty)
	assert.ErrorIs(t, err, queries.ErrBookingNotFound)
}

func TestBookingQueries_Stats(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBookingStore()
	q := queries.NewBookingQueries(store)

	storeBooking(t, store, "2025-04-01", booking.StatusPending)
	storeBooking(t, store, "2025-04-02", booking.StatusConfirmed)
	storeBooking(t, store, "2025-04-03", booking.StatusCancelled)
	storeBooking(t, store, "2025-04-04", booking.StatusCompleted)

	stats, err := q.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 1, stats.Completed)
}

func TestBookingQueries_ConfirmedDaysDistinct(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBookingStore()
	q := queries.NewBookingQueries(store)

	storeBooking(t, store, "2025-04-02", booking.StatusConfirmed)
	storeBooking(t, store, "2025-04-02", booking.StatusConfirmed)
	storeBooking(t, store, "2025-04-05", booking.StatusConfirmed)

	days, err := q.ConfirmedDays(ctx)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2025-04-02", days[0].String())
	assert.Equal(t, "2025-04-05", days[1].String())
}
