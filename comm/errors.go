package comm

import (
	"errors"
	"fmt"
)

// ErrAborted is returned to every blocked or subsequent World call
// once any process has called Abort. Wrap it with errors.Is to detect
// the fatal-error propagation path of spec.md §7: no per-operation
// retry, one abort terminates the whole job.
var ErrAborted = errors.New("comm: aborted")

// AbortError carries the distinguished negative code a process passed
// to Abort, per spec.md §6/§7.
type AbortError struct {
	Code   int
	Reason string
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("comm: abort(code=%d): %s", e.Code, e.Reason)
}

func (e *AbortError) Unwrap() error { return ErrAborted }
