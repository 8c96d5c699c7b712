//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"cleanpro-api/internal/domain/availability"
	"cleanpro-api/internal/infra/memory"
	"cleanpro-api/internal/pkg/calendar"
	"cleanpro-api/internal/pkg/clock"
	"cleanpro-api/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type availabilityFixture struct {
	commands  commands.AvailabilityCommands
	overrides *memory.AvailabilityStore
	clock     *clock.MockClock
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	t.Helper()

	overrides := memory.NewAvailabilityStore()
	clk := clock.NewMockClock(time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC))

	return &availabilityFixture{
		commands:  commands.NewAvailabilityCommands(overrides, clk),
		overrides: overrides,
		clock:     clk,
	}
}

func mustDay(t *testing.T, s string) calendar.Day {
	t.Helper()
	day, err := calendar.ParseDay(s)
	require.NoError(t, err)
	return day
}

func TestAvailabilityCommands_SetDayUpserts(t *testing.T) {
	ctx := context.Background()
	fx := newAvailabilityFixture(t)
	day := mustDay(t, "2025-03-15")

	first, err := fx.commands.SetDay(ctx, day, false, "manutenção")
	require.NoError(t, err)
	assert.False(t, first.IsAvailable)
	assert.Equal(t, "manutenção", first.Reason)

	// Same day again: the stored identity survives, fields change.
	second, err := fx.commands.SetDay(ctx, day, true, "ignored when available")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.IsAvailable)
	assert.Empty(t, second.Reason)

	all, err := fx.overrides.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAvailabilityCommands_SetRange(t *testing.T) {
	ctx := context.Background()
	fx := newAvailabilityFixture(t)

	err := fx.commands.SetRange(ctx, mustDay(t, "2025-03-20"), mustDay(t, "2025-03-22"), false, "viagem")
	require.NoError(t, err)

	all, err := fx.overrides.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2025-03-20", all[0].Day().String())
	assert.Equal(t, "2025-03-22", all[2].Day().String())
	for _, o := range all {
		assert.False(t, o.IsAvailable())
		assert.Equal(t, "viagem", o.Reason())
	}
}

func TestAvailabilityCommands_SetRangeRejectsInvertedRange(t *testing.T) {
	fx := newAvailabilityFixture(t)

	err := fx.commands.SetRange(context.Background(), mustDay(t, "2025-03-22"), mustDay(t, "2025-03-20"), false, "")
	assert.ErrorIs(t, err, commands.ErrInvalidDateRange)
}

func TestAvailabilityCommands_SetWeeklyPattern(t *testing.T) {
	ctx := context.Background()
	fx := newAvailabilityFixture(t)

	err := fx.commands.SetWeeklyPattern(ctx, []time.Weekday{time.Saturday}, false, "sem expediente aos sábados")
	require.NoError(t, err)

	all, err := fx.overrides.ListAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, all)

	for _, o := range all {
		assert.Equal(t, time.Saturday, o.Day().Weekday())
		assert.False(t, o.IsAvailable())
	}

	// Today (2025-03-08) is a Saturday and inside the horizon.
	assert.Equal(t, "2025-03-08", all[0].Day().String())

	// The horizon is bounded at six months out.
	horizon := mustDay(t, "2025-03-08").AddMonths(availability.WeeklyPatternHorizonMonths)
	last := all[len(all)-1]
	assert.False(t, last.Day().After(horizon))
}

func TestAvailabilityCommands_SetHolidays(t *testing.T) {
	ctx := context.Background()
	fx := newAvailabilityFixture(t)

	err := fx.commands.SetHolidays(ctx, []commands.Holiday{
		{Day: mustDay(t, "2025-12-25"), Name: "Natal"},
		{Day: mustDay(t, "2026-01-01"), Name: "Ano Novo"},
	})
	require.NoError(t, err)

	o, err := fx.overrides.FindByDay(ctx, mustDay(t, "2025-12-25"))
	require.NoError(t, err)
	assert.False(t, o.IsAvailable())
	assert.Equal(t, "Holiday: Natal", o.Reason())
}

func TestAvailabilityCommands_RemoveAndClearAll(t *testing.T) {
	ctx := context.Background()
	fx := newAvailabilityFixture(t)

	_, err := fx.commands.SetDay(ctx, mustDay(t, "2025-03-15"), false, "x")
	require.NoError(t, err)
	_, err = fx.commands.SetDay(ctx, mustDay(t, "2025-03-16"), false, "y")
	require.NoError(t, err)

	// Removing an absent day is a no-op.
	require.NoError(t, fx.commands.Remove(ctx, mustDay(t, "2030-01-01")))

	require.NoError(t, fx.commands.Remove(ctx, mustDay(t, "2025-03-15")))
	all, err := fx.overrides.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, fx.commands.ClearAll(ctx))
	all, err = fx.overrides.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
