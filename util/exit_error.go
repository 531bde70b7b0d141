package util

import (
	"fmt"
)

// ExitError makes the process exit with ExitCode. Err describes why and may be
// nil when the failure was already reported.
type ExitError struct {
	ExitCode int
	Err      error
}

func (ee ExitError) Error() string {
	if ee.Err == nil {
		return fmt.Sprintf("exit with code %d", ee.ExitCode)
	}
	return fmt.Sprintf("exit with code %d: %v", ee.ExitCode, ee.Err)
}

func (ee ExitError) Unwrap() error {
	return ee.Err
}
