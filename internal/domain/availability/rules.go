package availability

import (
	"time"

	"cleanpro-api/internal/pkg/calendar"
)

const (
	ReasonPastDate     = "past date"
	ReasonClosedSunday = "closed on Sundays"

	// HolidayReasonPrefix prefixes the holiday name on holiday overrides.
	HolidayReasonPrefix = "Holiday: "

	// DefaultClosedWeekday is the weekday blocked when no override says
	// otherwise.
	DefaultClosedWeekday = time.Sunday

	// WeeklyPatternHorizonMonths bounds how far forward a weekly pattern
	// writes overrides, so the operation terminates and never rewrites the
	// past.
	WeeklyPatternHorizonMonths = 6
)

type Decision struct {
	Available bool
	Reason    string
}

// OverrideSet is an immutable-by-convention lookup of overrides keyed by
// calendar day. Evaluate never mutates it.
type OverrideSet struct {
	byDay map[string]*Override
}

func NewOverrideSet(overrides []*Override) OverrideSet {
	byDay := make(map[string]*Override, len(overrides))
	for _, o := range overrides {
		byDay[o.Day().String()] = o
	}
	return OverrideSet{byDay: byDay}
}

func (s OverrideSet) Lookup(day calendar.Day) (*Override, bool) {
	o, ok := s.byDay[day.String()]
	return o, ok
}

func (s OverrideSet) Len() int {
	return len(s.byDay)
}

// Evaluate decides whether a single calendar day is bookable. An explicit
// override always wins, including a Sunday marked open. With no override the
// defaults apply in order: days before today are blocked, the default closed
// weekday is blocked, everything else is open. Today itself is open unless
// explicitly blocked.
func Evaluate(day, today calendar.Day, overrides OverrideSet) Decision {
	if o, ok := overrides.Lookup(day); ok {
		return Decision{Available: o.IsAvailable(), Reason: o.Reason()}
	}

	if day.Before(today) {
		return Decision{Available: false, Reason: ReasonPastDate}
	}
	if day.Weekday() == DefaultClosedWeekday {
		return Decision{Available: false, Reason: ReasonClosedSunday}
	}
	return Decision{Available: true}
}
