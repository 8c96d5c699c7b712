//go:build unit

package memory_test

import (
	"context"
	"testing"
	"time"

	"cleanpro-api/internal/domain/availability"
	"cleanpro-api/internal/infra"
	"cleanpro-api/internal/infra/memory"
	"cleanpro-api/internal/pkg/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityStore_SaveReplacesByDay(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAvailabilityStore()
	day, _ := calendar.ParseDay("2025-12-25")

	first, err := availability.NewOverride(day, false, "Holiday: Natal", time.Now())
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, first))

	first.Update(true, "", time.Now())
	require.NoError(t, store.Save(ctx, first))

	got, err := store.FindByDay(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, first.ID(), got.ID())
	assert.True(t, got.IsAvailable())
	assert.Empty(t, got.Reason())

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAvailabilityStore_ListAllSortedByDay(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAvailabilityStore()

	for _, s := range []string{"2025-06-03", "2025-06-01", "2025-06-02"} {
		day, _ := calendar.ParseDay(s)
		o, err := availability.NewOverride(day, false, "manutenção", time.Now())
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, o))
	}

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2025-06-01", all[0].Day().String())
	assert.Equal(t, "2025-06-03", all[2].Day().String())
}

func TestAvailabilityStore_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAvailabilityStore()
	day, _ := calendar.ParseDay("2025-06-01")

	require.NoError(t, store.Delete(ctx, day))

	_, err := store.FindByDay(ctx, day)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
