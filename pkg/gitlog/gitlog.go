// Package gitlog reads commit timestamps from local git repositories using
// libgit2.
package gitlog

import "errors"

// ErrRepositoryAccess indicates that a path is not a valid or readable git
// repository. It aborts the run.
var ErrRepositoryAccess = errors.New("repository access")

// Reader lists the UNIX timestamps of every commit reachable from HEAD of
// the repository at the given path. The commit chart only needs timestamps,
// so the capability stays this narrow and the chart core remains testable
// with synthetic data.
type Reader interface {
	ListCommitTimestamps(path string) ([]int64, error)
}
