//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cleanpro-api/internal/domain/availability"
	"cleanpro-api/internal/infra"
	"cleanpro-api/internal/infra/postgres"
	"cleanpro-api/internal/pkg/calendar"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AvailabilityRepositoryTestSuite struct {
	suite.Suite
	repo *postgres.AvailabilityRepository
	ctx  context.Context
	now  time.Time
}

func (s *AvailabilityRepositoryTestSuite) SetupSuite() {
	pool := setupDatabase(s.T())
	s.repo = postgres.NewAvailabilityRepository(pool)
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
}

func TestAvailabilityRepositorySuite(t *testing.T) {
	suite.Run(t, new(AvailabilityRepositoryTestSuite))
}

func (s *AvailabilityRepositoryTestSuite) override(date string, isAvailable bool, reason string) *availability.Override {
	day, err := calendar.ParseDay(date)
	require.NoError(s.T(), err)
	o, err := availability.NewOverride(day, isAvailable, reason, s.now)
	require.NoError(s.T(), err)
	return o
}

func (s *AvailabilityRepositoryTestSuite) TestSaveUpsertsByDay() {
	first := s.override("2025-05-01", false, "Feriado")
	require.NoError(s.T(), s.repo.Save(s.ctx, first))

	// Saving the same day again replaces the record instead of adding one.
	second := s.override("2025-05-01", true, "")
	require.NoError(s.T(), s.repo.Save(s.ctx, second))

	stored, err := s.repo.FindByDay(s.ctx, first.Day())
	s.Require().NoError(err)
	s.True(stored.IsAvailable())
	s.Empty(stored.Reason())
	s.Equal(first.ID(), stored.ID(), "upsert keeps the original identity")
}

func (s *AvailabilityRepositoryTestSuite) TestListAllSortedByDay() {
	require.NoError(s.T(), s.repo.DeleteAll(s.ctx))

	for _, date := range []string{"2025-05-20", "2025-05-10", "2025-05-15"} {
		require.NoError(s.T(), s.repo.Save(s.ctx, s.override(date, false, "manutenção")))
	}

	all, err := s.repo.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("2025-05-10", all[0].Day().String())
	s.Equal("2025-05-15", all[1].Day().String())
	s.Equal("2025-05-20", all[2].Day().String())
}

func (s *AvailabilityRepositoryTestSuite) TestDeleteIsIdempotent() {
	o := s.override("2025-05-25", false, "Feriado")
	require.NoError(s.T(), s.repo.Save(s.ctx, o))

	require.NoError(s.T(), s.repo.Delete(s.ctx, o.Day()))
	_, err := s.repo.FindByDay(s.ctx, o.Day())
	s.True(infra.IsKind(err, infra.KindNotFound))

	// Removing an absent day is not an error.
	require.NoError(s.T(), s.repo.Delete(s.ctx, o.Day()))
}
