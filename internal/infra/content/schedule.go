package content

import (
	"time"
	_ "time/tzdata" // zone database for minimal images
)

// Schedule derives broadcast times from the current instant in a fixed time zone
type Schedule struct {
	loc *time.Location
}

// NewSchedule creates a schedule for the IANA zone name. Unknown zones fall back to UTC.
func NewSchedule(zone string) *Schedule {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		loc = time.UTC
	}

	return &Schedule{loc: loc}
}

// Location returns the schedule's time zone
func (s *Schedule) Location() *time.Location {
	return s.loc
}

// Next returns the coming weekday at hour:minute. Today counts, even if the time has passed.
func (s *Schedule) Next(now time.Time, weekday time.Weekday, hour, minute int) time.Time {
	local := now.In(s.loc)
	days := (int(weekday) - int(local.Weekday()) + 7) % 7

	return s.at(local.AddDate(0, 0, days), hour, minute)
}

// Tomorrow returns the next calendar day at hour:minute
func (s *Schedule) Tomorrow(now time.Time, hour, minute int) time.Time {
	return s.at(now.In(s.loc).AddDate(0, 0, 1), hour, minute)
}

func (s *Schedule) at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, s.loc)
}
