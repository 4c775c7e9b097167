// SPDX-License-Identifier: MPL-2.0

// Package tuple provides small fixed-arity sequence builders that complement
// the unpack package: Repeat builds a sequence of N copies of one value, and
// SplitExact extracts exactly K delimiter-separated parts from a string.
package tuple

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCount is the sentinel error wrapped by InvalidCountError.
	ErrInvalidCount = errors.New("invalid count")
	// ErrTooFewParts is the sentinel error wrapped by PartCountError.
	ErrTooFewParts = errors.New("too few parts")
	// ErrEmptyDelimiter is returned by SplitExact for an empty delimiter.
	ErrEmptyDelimiter = errors.New("empty delimiter")
)

type (
	// InvalidCountError is returned when a requested count is out of range.
	InvalidCountError struct {
		Count int
		// Min is the smallest accepted count.
		Min int
	}

	// PartCountError is returned when the input yields fewer parts than requested.
	PartCountError struct {
		Want int
		Got  int
	}
)

// Error implements the error interface.
func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("invalid count %d (must be >= %d)", e.Count, e.Min)
}

// Unwrap returns ErrInvalidCount for errors.Is() compatibility.
func (e *InvalidCountError) Unwrap() error { return ErrInvalidCount }

// Error implements the error interface.
func (e *PartCountError) Error() string {
	return fmt.Sprintf("expected %d parts, input has %d", e.Want, e.Got)
}

// Unwrap returns ErrTooFewParts for errors.Is() compatibility.
func (e *PartCountError) Unwrap() error { return ErrTooFewParts }

// Repeat returns a sequence holding n copies of v.
func Repeat[T any](v T, n int) ([]T, error) {
	if n < 0 {
		return nil, &InvalidCountError{Count: n, Min: 0}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out, nil
}

// SplitExact splits text on delim and returns the first k parts. Parts beyond
// the k-th are ignored; the k-th part does not absorb the remainder.
func SplitExact(text, delim string, k int) ([]string, error) {
	if k <= 0 {
		return nil, &InvalidCountError{Count: k, Min: 1}
	}
	if delim == "" {
		return nil, ErrEmptyDelimiter
	}
	out := make([]string, 0, k)
	for part := range strings.SplitSeq(text, delim) {
		out = append(out, part)
		if len(out) == k {
			return out, nil
		}
	}
	return nil, &PartCountError{Want: k, Got: len(out)}
}
