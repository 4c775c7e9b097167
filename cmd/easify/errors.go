// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/easify/easify/internal/catalog"
	"github.com/easify/easify/internal/issue"
	"github.com/easify/easify/internal/seqio"
	"github.com/easify/easify/pkg/patternsyntax"
	"github.com/easify/easify/pkg/tuple"
	"github.com/easify/easify/pkg/unpack"
)

// classifyError maps a failure to the issue page that explains it. Errors
// without a matching page return 0.
func classifyError(err error) issue.Id {
	switch {
	case errors.Is(err, unpack.ErrArityMismatch):
		return issue.ArityMismatchId
	case errors.Is(err, unpack.ErrInsufficientElements):
		return issue.InsufficientElementsId
	case errors.Is(err, unpack.ErrMalformedPattern):
		return issue.MalformedPatternId
	case errors.Is(err, unpack.ErrDuplicateSlot):
		return issue.DuplicateSlotId
	case errors.Is(err, patternsyntax.ErrSyntax):
		return issue.PatternSyntaxId
	case errors.Is(err, catalog.ErrPatternNotFound):
		return issue.PatternNotFoundId
	case errors.Is(err, seqio.ErrInputParse):
		return issue.InputParseFailedId
	case errors.Is(err, tuple.ErrInvalidCount),
		errors.Is(err, tuple.ErrTooFewParts),
		errors.Is(err, tuple.ErrEmptyDelimiter):
		return issue.InvalidCountId
	}

	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Issue
	}
	return 0
}

func exitCodeFor(id issue.Id) int {
	switch id {
	case issue.ArityMismatchId, issue.InsufficientElementsId:
		return ExitMismatch
	case issue.MalformedPatternId, issue.DuplicateSlotId, issue.PatternSyntaxId,
		issue.PatternNotFoundId, issue.InvalidCountId:
		return ExitUsage
	default:
		return ExitGeneric
	}
}

// wrapError attaches operation context and the matching issue page to err.
func wrapError(operation, resource string, err error, suggestions ...string) error {
	return issue.NewErrorContext().
		WithOperation(operation).
		WithResource(resource).
		WithSuggestions(suggestions...).
		WithIssue(classifyError(err)).
		Wrap(err).
		BuildError()
}
