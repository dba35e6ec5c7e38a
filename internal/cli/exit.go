package cli

import "errors"

// Exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// errInputsFailed is returned after one or more inputs failed and were
// already reported.
var errInputsFailed = errors.New("one or more inputs could not be read")

// ExitError carries the exit code for a failed run. Silent errors have
// already been reported, or must not be.
type ExitError struct {
	Code   int
	Err    error
	Silent bool
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
