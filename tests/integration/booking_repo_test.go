//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cleanpro-api/internal/domain/booking"
	"cleanpro-api/internal/infra"
	"cleanpro-api/internal/infra/postgres"
	"cleanpro-api/internal/pkg/calendar"
	"cleanpro-api/internal/usecase/queries"
	"cleanpro-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingRepositoryTestSuite struct {
	suite.Suite
	repo  *postgres.BookingRepository
	reads *postgres.BookingReadStore
	ctx   context.Context
}

func (s *BookingRepositoryTestSuite) SetupSuite() {
	pool := setupDatabase(s.T())
	s.repo = postgres.NewBookingRepository(pool)
	s.reads = postgres.NewBookingReadStore(pool)
	s.ctx = context.Background()
}

func TestBookingRepositorySuite(t *testing.T) {
	suite.Run(t, new(BookingRepositoryTestSuite))
}

func (s *BookingRepositoryTestSuite) newBooking(date string) *booking.Booking {
	b, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Date = date
	}).BuildDomain()
	require.NoError(s.T(), err)
	return b
}

func (s *BookingRepositoryTestSuite) TestInsertAndFind() {
	b := s.newBooking("2025-04-01")
	require.NoError(s.T(), s.repo.Insert(s.ctx, b))

	found, err := s.repo.FindByID(s.ctx, b.ID())
	s.Require().NoError(err)
	s.Equal(b.ID(), found.ID())
	s.Equal(booking.StatusPending, found.Status())
	s.Equal(b.Client().Name(), found.Client().Name())
	s.Equal(b.Client().Email(), found.Client().Email())
	s.Equal("2025-04-01", found.Day().String())

	view, err := s.reads.GetByID(s.ctx, b.ID())
	s.Require().NoError(err)

	expected := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Date = "2025-04-01"
	}).BuildView()

	opts := []cmp.Option{
		cmpopts.IgnoreFields(queries.BookingView{}, "ID", "ShortCode", "CreatedAt"),
	}
	if diff := cmp.Diff(expected, view, opts...); diff != "" {
		s.T().Errorf("booking view mismatch (-want +got):\n%s", diff)
	}
}

func (s *BookingRepositoryTestSuite) TestFindMissingIsNotFound() {
	_, err := s.repo.FindByID(s.ctx, uuid.New())
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *BookingRepositoryTestSuite) TestUpdateStatusIsConditional() {
	b := s.newBooking("2025-04-02")
	require.NoError(s.T(), s.repo.Insert(s.ctx, b))

	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	first, err := s.repo.FindByID(s.ctx, b.ID())
	s.Require().NoError(err)
	second, err := s.repo.FindByID(s.ctx, b.ID())
	s.Require().NoError(err)

	require.NoError(s.T(), first.TransitionTo(booking.StatusConfirmed, now))
	s.Require().NoError(s.repo.UpdateStatus(s.ctx, first, booking.StatusPending))

	// The second copy still believes the booking is pending; its write must
	// be rejected rather than silently overwrite the confirmation.
	require.NoError(s.T(), second.TransitionTo(booking.StatusCancelled, now))
	err = s.repo.UpdateStatus(s.ctx, second, booking.StatusPending)
	s.True(infra.IsKind(err, infra.KindConflict))

	stored, err := s.reads.GetByID(s.ctx, b.ID())
	s.Require().NoError(err)
	s.Equal("confirmed", stored.Status)
	s.NotNil(stored.ConfirmedAt)
}

func (s *BookingRepositoryTestSuite) TestListByDayNewestFirst() {
	day := calendar.NewDay(2025, time.April, 3)

	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	older, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Date = "2025-04-03"
		b.CreatedAt = base
	}).BuildDomain()
	require.NoError(s.T(), err)
	newer, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Date = "2025-04-03"
		b.CreatedAt = base.Add(time.Minute)
	}).BuildDomain()
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.repo.Insert(s.ctx, older))
	require.NoError(s.T(), s.repo.Insert(s.ctx, newer))

	views, err := s.reads.ListByDay(s.ctx, day)
	s.Require().NoError(err)
	s.Require().Len(views, 2)
	s.Equal(newer.ID(), views[0].ID)
	s.Equal(older.ID(), views[1].ID)
}

func (s *BookingRepositoryTestSuite) TestDaysByStatusDistinct() {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	for _, date := range []string{"2025-04-10", "2025-04-10", "2025-04-11"} {
		b := s.newBooking(date)
		require.NoError(s.T(), b.TransitionTo(booking.StatusConfirmed, now))
		require.NoError(s.T(), s.repo.Insert(s.ctx, b))
	}

	days, err := s.reads.DaysByStatus(s.ctx, "confirmed")
	s.Require().NoError(err)

	seen := map[string]int{}
	for _, d := range days {
		seen[d.String()]++
	}
	s.Equal(1, seen["2025-04-10"])
	s.Equal(1, seen["2025-04-11"])
}
