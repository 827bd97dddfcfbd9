package domain

import "errors"

// exitCoder is satisfied by *exec.ExitError and by test doubles that simulate one.
type exitCoder interface {
	ExitCode() int
}

// ExitCode returns the process exit status for err.
// A failed child process propagates its own non-zero code; anything else maps to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var coder exitCoder
	if errors.As(err, &coder) {
		if code := coder.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
