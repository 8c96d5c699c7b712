package commands

import (
	"context"
	"time"

	"cleanpro-api/internal/domain/availability"
	"cleanpro-api/internal/infra"
	"cleanpro-api/internal/pkg/calendar"
	"cleanpro-api/internal/pkg/clock"
	"cleanpro-api/internal/pkg/errs"
	"cleanpro-api/internal/usecase/queries"
)

var ErrInvalidDateRange = errs.New("end date before start date")

type Holiday struct {
	Day  calendar.Day
	Name string
}

type AvailabilityCommands interface {
	// SetDay upserts the override for one calendar day. Writing a day that
	// already has an override updates it in place, keeping its id.
	SetDay(ctx context.Context, day calendar.Day, isAvailable bool, reason string) (*queries.OverrideView, error)
	// SetRange applies SetDay to every day in [start, end] inclusive.
	SetRange(ctx context.Context, start, end calendar.Day, isAvailable bool, reason string) error
	// SetWeeklyPattern applies SetDay to every date within the forward
	// horizon whose weekday is in daysOfWeek (0=Sunday .. 6=Saturday).
	SetWeeklyPattern(ctx context.Context, daysOfWeek []time.Weekday, isAvailable bool, reason string) error
	SetHolidays(ctx context.Context, holidays []Holiday) error
	// Remove reverts a day to default-rule evaluation; removing a day with
	// no override is a no-op.
	Remove(ctx context.Context, day calendar.Day) error
	ClearAll(ctx context.Context) error
}

type availabilityCommandsImpl struct {
	overrides AvailabilityRepository
	clock     clock.Clock
}

func NewAvailabilityCommands(overrides AvailabilityRepository, clk clock.Clock) AvailabilityCommands {
	return &availabilityCommandsImpl{overrides: overrides, clock: clk}
}

func (c *availabilityCommandsImpl) SetDay(ctx context.Context, day calendar.Day, isAvailable bool, reason string) (*queries.OverrideView, error) {
	o, err := c.upsertDay(ctx, day, isAvailable, reason)
	if err != nil {
		return nil, err
	}
	return queries.OverrideToView(o), nil
}

func (c *availabilityCommandsImpl) upsertDay(ctx context.Context, day calendar.Day, isAvailable bool, reason string) (*availability.Override, error) {
	now := c.clock.Now()

	existing, err := c.overrides.FindByDay(ctx, day)
	switch {
	case err == nil:
		existing.Update(isAvailable, reason, now)
		if err := c.overrides.Save(ctx, existing); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return existing, nil

	case infra.IsKind(err, infra.KindNotFound):
		o, err := availability.NewOverride(day, isAvailable, reason, now)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		if err := c.overrides.Save(ctx, o); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return o, nil

	default:
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

func (c *availabilityCommandsImpl) SetRange(ctx context.Context, start, end calendar.Day, isAvailable bool, reason string) error {
	if end.Before(start) {
		return ErrInvalidDateRange
	}
	for _, day := range calendar.Range(start, end) {
		if _, err := c.upsertDay(ctx, day, isAvailable, reason); err != nil {
			return err
		}
	}
	return nil
}

func (c *availabilityCommandsImpl) SetWeeklyPattern(ctx context.Context, daysOfWeek []time.Weekday, isAvailable bool, reason string) error {
	wanted := make(map[time.Weekday]bool, len(daysOfWeek))
	for _, wd := range daysOfWeek {
		wanted[wd] = true
	}

	// Bounded forward horizon: the pattern never rewrites past dates and
	// the walk always terminates.
	today := clock.Today(c.clock)
	horizon := today.AddMonths(availability.WeeklyPatternHorizonMonths)

	for day := today; !day.After(horizon); day = day.AddDays(1) {
		if !wanted[day.Weekday()] {
			continue
		}
		if _, err := c.upsertDay(ctx, day, isAvailable, reason); err != nil {
			return err
		}
	}
	return nil
}

func (c *availabilityCommandsImpl) SetHolidays(ctx context.Context, holidays []Holiday) error {
	for _, h := range holidays {
		reason := availability.HolidayReasonPrefix + h.Name
		if _, err := c.upsertDay(ctx, h.Day, false, reason); err != nil {
			return err
		}
	}
	return nil
}

func (c *availabilityCommandsImpl) Remove(ctx context.Context, day calendar.Day) error {
	if err := c.overrides.Delete(ctx, day); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *availabilityCommandsImpl) ClearAll(ctx context.Context) error {
	if err := c.overrides.DeleteAll(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
