// Package heatmap lays out a trailing window of calendar days on a
// week-column/day-row grid and renders one colored box per day.
package heatmap

// Bucket is a discrete commit-count intensity level used to pick a box fill.
type Bucket int

// NumBuckets is the number of intensity levels.
const NumBuckets = 5

// DefaultPalette holds the box fill colors, ordered from weakest to
// strongest bucket.
var DefaultPalette = []string{"#eeeeee", "#d6e685", "#8cc665", "#44a340", "#1e6823"}

// Classify maps a commit count to its intensity bucket. It is a pure, total
// function, non-decreasing in count.
func Classify(count int) Bucket {
	switch {
	case count < 1:
		return 0
	case count == 1:
		return 1
	case count <= 3:
		return 2
	case count <= 5:
		return 3
	default:
		return 4
	}
}
