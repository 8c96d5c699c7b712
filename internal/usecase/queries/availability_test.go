//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"cleanpro-api/internal/domain/availability"
	"cleanpro-api/internal/infra/memory"
	"cleanpro-api/internal/pkg/calendar"
	"cleanpro-api/internal/pkg/clock"
	"cleanpro-api/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityQueries_CheckDay(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAvailabilityStore()
	clk := clock.NewMockClock(time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC))
	q := queries.NewAvailabilityQueries(store, clk)

	blocked, err := calendar.ParseDay("2025-03-12")
	require.NoError(t, err)
	o, err := availability.NewOverride(blocked, false, "manutenção", clk.Now())
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, o))

	cases := []struct {
		name      string
		date      string
		available bool
		reason    string
	}{
		{"weekday defaults to available", "2025-03-10", true, ""},
		{"sunday closed by default", "2025-03-09", false, availability.ReasonClosedSunday},
		{"past date", "2025-03-01", false, availability.ReasonPastDate},
		{"override blocks the day", "2025-03-12", false, "manutenção"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			day, err := calendar.ParseDay(tc.date)
			require.NoError(t, err)

			decision, err := q.CheckDay(ctx, day)
			require.NoError(t, err)
			assert.Equal(t, tc.available, decision.Available)
			assert.Equal(t, tc.reason, decision.Reason)
			assert.True(t, decision.Day.Equal(day))
		})
	}
}

func TestAvailabilityQueries_Stats(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAvailabilityStore()
	clk := clock.NewMockClock(time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC))
	q := queries.NewAvailabilityQueries(store, clk)

	days := []struct {
		date      string
		available bool
	}{
		{"2025-03-12", false},
		{"2025-03-13", false},
		{"2025-03-16", true},
	}
	for _, d := range days {
		day, err := calendar.ParseDay(d.date)
		require.NoError(t, err)
		o, err := availability.NewOverride(day, d.available, "", clk.Now())
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, o))
	}

	stats, err := q.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Available)
	assert.Equal(t, 2, stats.Unavailable)
}
