package calendar

import (
	"errors"
	"time"
)

// Layout is the wire format for calendar days (ISO date, no time component).
const Layout = "2006-01-02"

var ErrInvalidDay = errors.New("invalid calendar day")

// Day is a calendar date at day granularity. Two Days compare equal when
// year, month and day match, regardless of the time-of-day or zone of the
// timestamps they were derived from.
type Day struct {
	t time.Time
}

func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf truncates a timestamp to its calendar day in the timestamp's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return NewDay(y, m, d)
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Day{}, ErrInvalidDay
	}
	return DayOf(t), nil
}

func (d Day) Time() time.Time        { return d.t }
func (d Day) Weekday() time.Weekday  { return d.t.Weekday() }
func (d Day) String() string         { return d.t.Format(Layout) }
func (d Day) IsZero() bool           { return d.t.IsZero() }
func (d Day) Equal(other Day) bool   { return d.t.Equal(other.t) }
func (d Day) Before(other Day) bool  { return d.t.Before(other.t) }
func (d Day) After(other Day) bool   { return d.t.After(other.t) }
func (d Day) AddDays(n int) Day      { return Day{t: d.t.AddDate(0, 0, n)} }
func (d Day) AddMonths(n int) Day    { return Day{t: d.t.AddDate(0, n, 0)} }

// DaysUntil returns the number of whole days from d to other (negative when
// other is earlier).
func (d Day) DaysUntil(other Day) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Day) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return ErrInvalidDay
	}
	parsed, err := ParseDay(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Range lists every day in [start, end] inclusive. Empty when end < start.
func Range(start, end Day) []Day {
	if end.Before(start) {
		return nil
	}
	days := make([]Day, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}
