package domain

import (
	"time"

	"github.com/m04kA/LittleLemon-Booking/pkg/types"
)

// DayKind selects which opening-hours table applies to a date
type DayKind string

const (
	DayKindWeekday DayKind = "weekday"
	DayKindWeekend DayKind = "weekend"
	DayKindSpecial DayKind = "special"
)

// SpecialDate is a fixed calendar day (any year) served with the extended table
type SpecialDate struct {
	Month time.Month
	Day   int
}

// SpecialDates lists holidays with extended hours
var SpecialDates = []SpecialDate{
	{Month: time.December, Day: 24}, // Christmas Eve
	{Month: time.December, Day: 25}, // Christmas Day
	{Month: time.December, Day: 31}, // New Year's Eve
	{Month: time.January, Day: 1},   // New Year's Day
	{Month: time.February, Day: 14}, // Valentine's Day
	{Month: time.November, Day: 22}, // Thanksgiving (approximate)
}

// Schedule describes one base table: a contiguous half-hour grid from First to Last inclusive.
// Slots at or after ClosedFrom are pre-marked unavailable.
type Schedule struct {
	First      types.TimeString
	Last       types.TimeString
	ClosedFrom *types.TimeString
}

var weekdayClosedFrom = types.MustTimeString("21:30")

// Schedules holds the base table parameters per day kind
var Schedules = map[DayKind]Schedule{
	DayKindWeekday: {
		First:      types.MustTimeString("17:00"),
		Last:       types.MustTimeString("22:00"),
		ClosedFrom: &weekdayClosedFrom, // less popular times on weekdays
	},
	DayKindWeekend: {
		First: types.MustTimeString("17:00"),
		Last:  types.MustTimeString("22:00"),
	},
	DayKindSpecial: {
		First: types.MustTimeString("16:00"),
		Last:  types.MustTimeString("22:30"),
	},
}

// ClassifyDate determines the day kind of an ISO date string.
// Special dates take precedence over weekends. A string that cannot be parsed
// falls through every check and is served as a weekday.
func ClassifyDate(date string) DayKind {
	d, err := time.Parse(DateFormat, date)
	if err != nil {
		return DayKindWeekday
	}
	return ClassifyTime(d)
}

// ClassifyTime determines the day kind of a calendar day
func ClassifyTime(d time.Time) DayKind {
	if IsSpecialDate(d) {
		return DayKindSpecial
	}
	if IsWeekend(d) {
		return DayKindWeekend
	}
	return DayKindWeekday
}

// IsSpecialDate reports whether d falls on one of SpecialDates
func IsSpecialDate(d time.Time) bool {
	for _, s := range SpecialDates {
		if d.Month() == s.Month && d.Day() == s.Day {
			return true
		}
	}
	return false
}

// IsWeekend reports whether d is a Saturday or a Sunday
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// BaseTimeTable builds the base slot table for a day kind in chronological order
func BaseTimeTable(kind DayKind) ([]TimeSlot, error) {
	schedule, ok := Schedules[kind]
	if !ok {
		schedule = Schedules[DayKindWeekday]
	}

	slots := make([]TimeSlot, 0)
	current := schedule.First
	for !current.IsAfter(schedule.Last) {
		available := schedule.ClosedFrom == nil || current.IsBefore(*schedule.ClosedFrom)
		slots = append(slots, TimeSlot{Time: current, Available: available})

		if current.Equal(schedule.Last) {
			break
		}
		next, err := current.AddMinutes(SlotStepMinutes)
		if err != nil {
			return nil, err
		}
		current = next
	}

	return slots, nil
}

// FindSlot looks a slot up by its "HH:MM" label
func FindSlot(slots []TimeSlot, t string) (TimeSlot, bool) {
	for _, s := range slots {
		if s.Time.String() == t {
			return s, true
		}
	}
	return TimeSlot{}, false
}

// IsDateInPast reports whether the calendar day of date is before the calendar day of now
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}

// Tomorrow returns the ISO date of the day after now, the earliest bookable date
func Tomorrow(now time.Time) string {
	return now.AddDate(0, 0, 1).Format(DateFormat)
}
