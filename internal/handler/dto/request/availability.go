package request

import (
	"time"

	"cleanpro-api/internal/pkg/calendar"
	"cleanpro-api/internal/usecase/commands"
)

type SetDayRequest struct {
	Date        string `json:"date" binding:"required"`
	IsAvailable *bool  `json:"is_available" binding:"required"`
	Reason      string `json:"reason"`
}

func (r *SetDayRequest) Day() (calendar.Day, error) {
	return calendar.ParseDay(r.Date)
}

type SetRangeRequest struct {
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	IsAvailable *bool  `json:"is_available" binding:"required"`
	Reason      string `json:"reason"`
}

func (r *SetRangeRequest) Days() (start, end calendar.Day, err error) {
	start, err = calendar.ParseDay(r.StartDate)
	if err != nil {
		return calendar.Day{}, calendar.Day{}, err
	}
	end, err = calendar.ParseDay(r.EndDate)
	if err != nil {
		return calendar.Day{}, calendar.Day{}, err
	}
	return start, end, nil
}

type SetWeeklyPatternRequest struct {
	// Weekdays uses 0=Sunday .. 6=Saturday, matching the admin calendar UI.
	Weekdays    []int  `json:"weekdays" binding:"required,min=1,dive,gte=0,lte=6"`
	IsAvailable *bool  `json:"is_available" binding:"required"`
	Reason      string `json:"reason"`
}

func (r *SetWeeklyPatternRequest) ToWeekdays() []time.Weekday {
	out := make([]time.Weekday, 0, len(r.Weekdays))
	for _, d := range r.Weekdays {
		out = append(out, time.Weekday(d))
	}
	return out
}

type HolidayEntry struct {
	Date string `json:"date" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type SetHolidaysRequest struct {
	Holidays []HolidayEntry `json:"holidays" binding:"required,min=1,dive"`
}

func (r *SetHolidaysRequest) ToHolidays() ([]commands.Holiday, error) {
	out := make([]commands.Holiday, 0, len(r.Holidays))
	for _, h := range r.Holidays {
		day, err := calendar.ParseDay(h.Date)
		if err != nil {
			return nil, err
		}
		out = append(out, commands.Holiday{Day: day, Name: h.Name})
	}
	return out, nil
}
