// SPDX-License-Identifier: MPL-2.0

package cmd

import "fmt"

const (
	// ExitGeneric is used for failures without a more specific code.
	ExitGeneric = 1
	// ExitUsage reports a bad pattern, catalog reference or count.
	ExitUsage = 2
	// ExitMismatch reports a sequence whose length the pattern cannot accept.
	ExitMismatch = 3
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
