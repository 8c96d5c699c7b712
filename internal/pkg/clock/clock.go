package clock

import (
	"time"

	"cleanpro-api/internal/pkg/calendar"
)

type Clock interface {
	Now() time.Time
}

// Today is the calendar day of a clock's current instant. Availability rules
// and booking projections compare at this granularity only.
func Today(c Clock) calendar.Day {
	return calendar.DayOf(c.Now())
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Advance(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
