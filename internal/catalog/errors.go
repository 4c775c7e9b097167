// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrPatternNotFound is the sentinel error wrapped by PatternNotFoundError.
	ErrPatternNotFound = errors.New("pattern not found")
	// ErrUnsupportedFormat is the sentinel error wrapped by UnsupportedFormatError.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	// ErrInvalidName is returned when a catalog entry name is not acceptable.
	ErrInvalidName = errors.New("invalid pattern name")
	// ErrInvalidPattern is the sentinel error wrapped by InvalidPatternError.
	ErrInvalidPattern = errors.New("invalid catalog pattern")
)

type (
	// PatternNotFoundError is returned when a name has no catalog entry.
	PatternNotFoundError struct {
		Name string
	}

	// UnsupportedFormatError is returned for file extensions and export
	// formats other than CUE and TOML.
	UnsupportedFormatError struct {
		Format string
	}

	// InvalidPatternError is returned when a catalog entry fails to parse or
	// compile. Err is the underlying syntax or compile error.
	InvalidPatternError struct {
		Name string
		Err  error
	}
)

func (e *PatternNotFoundError) Error() string {
	return fmt.Sprintf("pattern %q not found in catalog", e.Name)
}

// Unwrap returns ErrPatternNotFound for errors.Is() compatibility.
func (e *PatternNotFoundError) Unwrap() error { return ErrPatternNotFound }

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported catalog format %q (want cue or toml)", e.Format)
}

// Unwrap returns ErrUnsupportedFormat for errors.Is() compatibility.
func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("catalog pattern %q: %v", e.Name, e.Err)
}

// Unwrap exposes both ErrInvalidPattern and the underlying error, so
// errors.Is matches unpack.ErrMalformedPattern as well as ErrInvalidPattern.
func (e *InvalidPatternError) Unwrap() []error { return []error{ErrInvalidPattern, e.Err} }
