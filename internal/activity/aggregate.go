package activity

import (
	"fmt"

	"github.com/Sumatoshi-tech/workchart/pkg/gitlog"
)

// Counts maps a calendar day to the number of commits recorded on it,
// aggregated across all scanned repositories. Built once per run and
// treated as read-only afterwards.
type Counts map[Day]int

// Total returns the sum of all per-day counts.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}

	return total
}

// Aggregate reads the full commit history of each repository path and counts
// commits per local calendar day. Repositories are scanned sequentially and
// independently; the result does not depend on path order. The first
// repository that fails to open aborts the run with no partial result.
func Aggregate(reader gitlog.Reader, paths []string) (Counts, error) {
	counts := make(Counts)

	for _, path := range paths {
		timestamps, err := reader.ListCommitTimestamps(path)
		if err != nil {
			return nil, fmt.Errorf("aggregate %s: %w", path, err)
		}

		for _, ts := range timestamps {
			counts[DayOfUnix(ts)]++
		}
	}

	return counts, nil
}
