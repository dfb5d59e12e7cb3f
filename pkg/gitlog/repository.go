package gitlog

import (
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// CommitReader reads commit history through libgit2.
type CommitReader struct{}

// NewCommitReader returns a Reader backed by libgit2.
func NewCommitReader() *CommitReader {
	return &CommitReader{}
}

// ListCommitTimestamps opens the repository at path and walks its full
// commit history from HEAD, returning the committer UNIX timestamp of every
// commit. The repository is never mutated.
func (r *CommitReader) ListCommitTimestamps(path string) ([]int64, error) {
	repo, err := git2go.OpenRepository(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRepositoryAccess, path, err)
	}
	defer repo.Free()

	walk, err := repo.Walk()
	if err != nil {
		return nil, fmt.Errorf("create revwalk for %s: %w", path, err)
	}
	defer walk.Free()

	err = walk.PushHead()
	if err != nil {
		// A freshly-initialized repository has an unborn HEAD. That is an
		// empty history, not an unreadable repository.
		if git2go.IsErrorCode(err, git2go.ErrorCodeUnbornBranch) ||
			git2go.IsErrorCode(err, git2go.ErrorCodeNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %s: %v", ErrRepositoryAccess, path, err)
	}

	walk.Sorting(git2go.SortTime)

	var timestamps []int64

	err = walk.Iterate(func(commit *git2go.Commit) bool {
		timestamps = append(timestamps, commit.Committer().When.Unix())
		commit.Free()

		return true
	})
	if err != nil {
		return nil, fmt.Errorf("walk history of %s: %w", path, err)
	}

	return timestamps, nil
}
