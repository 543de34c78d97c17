// Package calendar holds the ISO calendar-date helpers used to line log
// entries up against weekly plans, plus iCalendar export of those plans.
package calendar

import (
	"fmt"
	"time"
)

// ISOLayout is the YYYY-MM-DD layout used for every stored date
const ISOLayout = "2006-01-02"

// CalendarDate is a date with no time-of-day or zone attached
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseCalendarDate parses YYYY-MM-DD into its components.
// The components are taken as written, so no zone conversion can shift the day.
func ParseCalendarDate(iso string) (CalendarDate, error) {
	if iso == "" {
		return CalendarDate{}, fmt.Errorf("empty date")
	}
	t, err := time.Parse(ISOLayout, iso)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q: %w", iso, err)
	}
	return FromTime(t), nil
}

// FromTime returns the calendar date of t in t's own location
func FromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// AddDays returns the date n days after d; n may be negative
func (d CalendarDate) AddDays(n int) CalendarDate {
	// time.Date normalizes day overflow across month and year boundaries
	return FromTime(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

// Weekday returns d's day of the week
func (d CalendarDate) Weekday() time.Weekday {
	return d.utcNoon().Weekday()
}

// DaysSince returns the number of whole days from other to d
func (d CalendarDate) DaysSince(other CalendarDate) int {
	return int(d.utcNoon().Sub(other.utcNoon()).Hours() / 24)
}

// String formats d as YYYY-MM-DD
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d CalendarDate) utcNoon() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}

// IsWithinWeek reports whether dateISO falls in the inclusive window
// [weekStartISO, weekStartISO+6]. Empty or unparseable input is never within.
func IsWithinWeek(dateISO, weekStartISO string) bool {
	if dateISO == "" || weekStartISO == "" {
		return false
	}
	date, err := ParseCalendarDate(dateISO)
	if err != nil {
		return false
	}
	start, err := ParseCalendarDate(weekStartISO)
	if err != nil {
		return false
	}
	offset := date.DaysSince(start)
	return offset >= 0 && offset <= 6
}

// MondayIndexedWeekday maps dateISO to 0 (Monday) through 6 (Sunday).
// Empty or unparseable input yields 0.
func MondayIndexedWeekday(dateISO string) int {
	if dateISO == "" {
		return 0
	}
	d, err := ParseCalendarDate(dateISO)
	if err != nil {
		return 0
	}
	return (int(d.Weekday()) + 6) % 7
}

// MondayOf returns the ISO date of the Monday starting t's week
func MondayOf(t time.Time) string {
	d := FromTime(t)
	return d.AddDays(-((int(d.Weekday()) + 6) % 7)).String()
}
