// Package activity aggregates commit timestamps into per-day counts.
package activity

import (
	"fmt"
	"time"
)

// Day is a timezone-naive calendar date. It is comparable and usable as a
// map key; equality and ordering consider the calendar date only.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf truncates a point in time to its local calendar day.
func DayOf(t time.Time) Day {
	year, month, day := t.Local().Date()

	return Day{Year: year, Month: month, Day: day}
}

// DayOfUnix converts a UNIX timestamp to the local calendar day it falls on.
// Day boundaries follow the local system time zone, matching the calendar
// the user sees.
func DayOfUnix(ts int64) Day {
	return DayOf(time.Unix(ts, 0))
}

// Time returns midnight local time of the day.
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// AddDays returns the day shifted by n calendar days. n may be negative.
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

// WeekdayIndex returns the ISO-8601 weekday index of the day:
// 0 = Monday .. 6 = Sunday. This is the single weekday convention used
// throughout the chart layout.
func (d Day) WeekdayIndex() int {
	const daysPerWeek = 7

	return (int(d.Time().Weekday()) + daysPerWeek - 1) % daysPerWeek
}

// String returns the ISO date form, e.g. "2026-08-29".
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
