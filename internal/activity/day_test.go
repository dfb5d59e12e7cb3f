package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDayOfTruncatesTimeOfDay(t *testing.T) {
	t.Parallel()

	late := time.Date(2026, time.August, 29, 23, 59, 59, 0, time.Local)
	early := time.Date(2026, time.August, 29, 0, 0, 1, 0, time.Local)

	want := Day{Year: 2026, Month: time.August, Day: 29}
	require.Equal(t, want, DayOf(late))
	require.Equal(t, want, DayOf(early))
}

func TestDayOfUnix(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, time.August, 29, 13, 30, 0, 0, time.Local).Unix()
	require.Equal(t, Day{Year: 2026, Month: time.August, Day: 29}, DayOfUnix(ts))
}

func TestAddDaysAcrossBoundaries(t *testing.T) {
	t.Parallel()

	d := Day{Year: 2026, Month: time.January, Day: 1}

	require.Equal(t, Day{Year: 2025, Month: time.December, Day: 31}, d.AddDays(-1))
	require.Equal(t, Day{Year: 2026, Month: time.February, Day: 1}, d.AddDays(31))

	// Leap year: 2024-02-28 + 1 = 2024-02-29.
	leap := Day{Year: 2024, Month: time.February, Day: 28}
	require.Equal(t, Day{Year: 2024, Month: time.February, Day: 29}, leap.AddDays(1))
}

func TestWeekdayIndex(t *testing.T) {
	t.Parallel()

	// 2026-08-24 is a Monday.
	for i := range 7 {
		d := Day{Year: 2026, Month: time.August, Day: 24}.AddDays(i)
		require.Equal(t, i, d.WeekdayIndex(), "%s", d)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "2026-08-05", Day{Year: 2026, Month: time.August, Day: 5}.String())
}
