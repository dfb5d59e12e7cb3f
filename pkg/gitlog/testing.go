package gitlog

// TestReader is a synthetic Reader for unit tests. It serves fixed
// timestamps per path and can be told to fail for specific paths.
type TestReader struct {
	Timestamps map[string][]int64
	Errs       map[string]error
}

// NewTestReader creates an empty TestReader.
func NewTestReader() *TestReader {
	return &TestReader{
		Timestamps: make(map[string][]int64),
		Errs:       make(map[string]error),
	}
}

// ListCommitTimestamps returns the configured timestamps for path, or the
// configured error. Unknown paths fail with ErrRepositoryAccess, matching
// the behavior of the libgit2 reader on a non-repository path.
func (r *TestReader) ListCommitTimestamps(path string) ([]int64, error) {
	if err, ok := r.Errs[path]; ok {
		return nil, err
	}

	timestamps, ok := r.Timestamps[path]
	if !ok {
		return nil, ErrRepositoryAccess
	}

	return timestamps, nil
}
