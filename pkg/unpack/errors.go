// SPDX-License-Identifier: MPL-2.0

package unpack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedPattern is the sentinel error wrapped by MalformedPatternError.
	ErrMalformedPattern = errors.New("malformed pattern")
	// ErrDuplicateSlot is the sentinel error wrapped by DuplicateSlotError.
	ErrDuplicateSlot = errors.New("duplicate slot name")
	// ErrArityMismatch is the sentinel error wrapped by ArityMismatchError.
	ErrArityMismatch = errors.New("arity mismatch")
	// ErrInsufficientElements is the sentinel error wrapped by InsufficientElementsError.
	ErrInsufficientElements = errors.New("insufficient elements")
	// ErrReadOnlyBinding is the sentinel error wrapped by ReadOnlyBindingError.
	ErrReadOnlyBinding = errors.New("read-only binding")
	// ErrNotScalar is returned when a scalar accessor is used on the rest binding.
	ErrNotScalar = errors.New("binding is not a scalar slot")
	// ErrNotRest is returned when a sub-sequence accessor is used on a scalar binding.
	ErrNotRest = errors.New("binding is not the rest slot")
	// ErrNilSource is returned by Consume when given a nil source pointer.
	ErrNilSource = errors.New("nil source sequence")
)

type (
	// MalformedPatternError is returned by Compile when more than one slot is
	// marked as rest. No partial pattern is produced.
	MalformedPatternError struct {
		// RestPositions lists every position marked as rest, in declaration order.
		RestPositions []int
	}

	// DuplicateSlotError is returned by Compile under WithUniqueNames when two
	// slots share a name.
	DuplicateSlotError struct {
		Name   string
		First  int
		Second int
	}

	// ArityMismatchError is returned when a pattern without a rest slot is
	// applied to a sequence whose length differs from the pattern's arity.
	ArityMismatchError struct {
		Expected int
		Actual   int
	}

	// InsufficientElementsError is returned when a pattern with a rest slot is
	// applied to a sequence shorter than arity-1.
	InsufficientElementsError struct {
		Minimum int
		Actual  int
	}

	// ReadOnlyBindingError is returned when a writable accessor is requested
	// for a slot that was not declared mutable.
	ReadOnlyBindingError struct {
		Name string
	}
)

// Error implements the error interface.
func (e *MalformedPatternError) Error() string {
	positions := make([]string, len(e.RestPositions))
	for i, p := range e.RestPositions {
		positions[i] = strconv.Itoa(p)
	}
	return fmt.Sprintf("malformed pattern: at most one rest slot allowed, found %d (positions %s)",
		len(e.RestPositions), strings.Join(positions, ", "))
}

// Unwrap returns ErrMalformedPattern for errors.Is() compatibility.
func (e *MalformedPatternError) Unwrap() error { return ErrMalformedPattern }

// Error implements the error interface.
func (e *DuplicateSlotError) Error() string {
	return fmt.Sprintf("duplicate slot name %q at positions %d and %d", e.Name, e.First, e.Second)
}

// Unwrap returns ErrDuplicateSlot for errors.Is() compatibility.
func (e *DuplicateSlotError) Unwrap() error { return ErrDuplicateSlot }

// Error implements the error interface.
func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("arity mismatch: pattern expects exactly %d elements, sequence has %d", e.Expected, e.Actual)
}

// Unwrap returns ErrArityMismatch for errors.Is() compatibility.
func (e *ArityMismatchError) Unwrap() error { return ErrArityMismatch }

// Error implements the error interface.
func (e *InsufficientElementsError) Error() string {
	return fmt.Sprintf("insufficient elements: pattern needs at least %d elements, sequence has %d", e.Minimum, e.Actual)
}

// Unwrap returns ErrInsufficientElements for errors.Is() compatibility.
func (e *InsufficientElementsError) Unwrap() error { return ErrInsufficientElements }

// Error implements the error interface.
func (e *ReadOnlyBindingError) Error() string {
	return fmt.Sprintf("slot %q is not mutable", e.Name)
}

// Unwrap returns ErrReadOnlyBinding for errors.Is() compatibility.
func (e *ReadOnlyBindingError) Unwrap() error { return ErrReadOnlyBinding }
