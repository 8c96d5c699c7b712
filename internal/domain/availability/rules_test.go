//go:build unit

package availability_test

import (
	"testing"
	"time"

	"cleanpro-api/internal/domain/availability"
	"cleanpro-api/internal/pkg/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = calendar.NewDay(2025, time.March, 12) // a Wednesday

func overrideFor(t *testing.T, day calendar.Day, open bool, reason string) *availability.Override {
	t.Helper()
	o, err := availability.NewOverride(day, open, reason, time.Now())
	require.NoError(t, err)
	return o
}

func TestEvaluateDefaults(t *testing.T) {
	empty := availability.NewOverrideSet(nil)

	cases := []struct {
		name      string
		day       calendar.Day
		available bool
		reason    string
	}{
		{name: "past date blocked", day: today.AddDays(-1), available: false, reason: availability.ReasonPastDate},
		{name: "distant past blocked", day: today.AddDays(-365), available: false, reason: availability.ReasonPastDate},
		{name: "today open", day: today, available: true},
		{name: "weekday open", day: today.AddDays(1), available: true},
		{name: "sunday blocked", day: calendar.NewDay(2025, time.March, 16), available: false, reason: availability.ReasonClosedSunday},
		{name: "next sunday blocked", day: calendar.NewDay(2025, time.March, 23), available: false, reason: availability.ReasonClosedSunday},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := availability.Evaluate(tc.day, today, empty)
			assert.Equal(t, tc.available, got.Available)
			assert.Equal(t, tc.reason, got.Reason)
		})
	}
}

func TestEvaluateOverrideWins(t *testing.T) {
	sunday := calendar.NewDay(2025, time.March, 16)
	weekday := calendar.NewDay(2025, time.March, 18)

	t.Run("open override beats sunday default", func(t *testing.T) {
		set := availability.NewOverrideSet([]*availability.Override{
			overrideFor(t, sunday, true, ""),
		})
		got := availability.Evaluate(sunday, today, set)
		assert.True(t, got.Available)
		assert.Empty(t, got.Reason)
	})

	t.Run("blocked override beats open default", func(t *testing.T) {
		set := availability.NewOverrideSet([]*availability.Override{
			overrideFor(t, weekday, false, "team training"),
		})
		got := availability.Evaluate(weekday, today, set)
		assert.False(t, got.Available)
		assert.Equal(t, "team training", got.Reason)
	})

	t.Run("blocked override on past day keeps its own reason", func(t *testing.T) {
		past := today.AddDays(-3)
		set := availability.NewOverrideSet([]*availability.Override{
			overrideFor(t, past, false, "maintenance"),
		})
		got := availability.Evaluate(past, today, set)
		assert.False(t, got.Available)
		assert.Equal(t, "maintenance", got.Reason)
	})
}

func TestOverrideClearsReasonWhenAvailable(t *testing.T) {
	day := today.AddDays(2)

	o := overrideFor(t, day, false, "holiday break")
	assert.Equal(t, "holiday break", o.Reason())

	o.Update(true, "stale reason", time.Now())
	assert.True(t, o.IsAvailable())
	assert.Empty(t, o.Reason())
}

func TestOverrideUpdateKeepsIdentity(t *testing.T) {
	day := today.AddDays(2)
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	o, err := availability.NewOverride(day, false, "holiday break", created)
	require.NoError(t, err)
	id := o.ID()

	o.Update(false, "extended break", updated)

	assert.Equal(t, id, o.ID())
	assert.Equal(t, created, o.CreatedAt())
	assert.Equal(t, updated, o.UpdatedAt())
	assert.Equal(t, "extended break", o.Reason())
}
