package heatmap

import (
	"github.com/Sumatoshi-tech/workchart/internal/activity"
)

// DaysPerWeek is the number of grid rows.
const DaysPerWeek = 7

// Cell locates a day's box in the chart grid: Col is the week index, Row is
// the weekday index (0 = Monday .. 6 = Sunday, see activity.Day.WeekdayIndex).
type Cell struct {
	Col int
	Row int
}

// DayCell pairs a calendar day with its grid cell.
type DayCell struct {
	Day  activity.Day
	Cell Cell
}

// Layout places a trailing window of consecutive calendar days ending today
// on the grid. Boxes stack first by column (week) and then by row (weekday),
// so a window starting mid-week leaves the top of the first column empty.
type Layout struct {
	Start       activity.Day
	Days        int
	Weeks       int
	firstOffset int
}

// NewLayout computes the layout of a days-long window ending on today.
// days must be positive; the caller validates it.
func NewLayout(today activity.Day, days int) Layout {
	start := today.AddDays(-(days - 1))

	weeks := (days + DaysPerWeek - 1) / DaysPerWeek
	if today.WeekdayIndex()+1 < days%DaysPerWeek {
		// The window overflows into days%7 extra boxes, but the last week
		// only has room for today.WeekdayIndex()+1 of them.
		weeks++
	}

	return Layout{
		Start:       start,
		Days:        days,
		Weeks:       weeks,
		firstOffset: start.WeekdayIndex(),
	}
}

// Cells returns one entry per day in the window, in chronological order.
// Every day in the window appears exactly once and no two days share a cell.
func (l Layout) Cells() []DayCell {
	cells := make([]DayCell, 0, l.Days)

	for i := l.firstOffset; i < l.firstOffset+l.Days; i++ {
		cells = append(cells, DayCell{
			Day:  l.Start.AddDays(i - l.firstOffset),
			Cell: Cell{Col: i / DaysPerWeek, Row: i % DaysPerWeek},
		})
	}

	return cells
}
