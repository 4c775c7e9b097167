// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/easify/easify/internal/catalog"
	"github.com/easify/easify/internal/issue"
	"github.com/easify/easify/internal/seqio"
	"github.com/easify/easify/pkg/patternsyntax"
	"github.com/easify/easify/pkg/tuple"
	"github.com/easify/easify/pkg/unpack"
)

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
		code int
	}{
		{"arity", &unpack.ArityMismatchError{Expected: 2, Actual: 3}, issue.ArityMismatchId, ExitMismatch},
		{"insufficient", &unpack.InsufficientElementsError{Minimum: 2, Actual: 1}, issue.InsufficientElementsId, ExitMismatch},
		{"malformed", &unpack.MalformedPatternError{RestPositions: []int{0, 1}}, issue.MalformedPatternId, ExitUsage},
		{"duplicate", &unpack.DuplicateSlotError{Name: "a", First: 0, Second: 1}, issue.DuplicateSlotId, ExitUsage},
		{"syntax", &patternsyntax.SyntaxError{Offset: 1, Msg: "x"}, issue.PatternSyntaxId, ExitUsage},
		{"not found", &catalog.PatternNotFoundError{Name: "x"}, issue.PatternNotFoundId, ExitUsage},
		{"input", &seqio.InputParseError{Format: "json", Err: errors.New("x")}, issue.InputParseFailedId, ExitGeneric},
		{"count", &tuple.InvalidCountError{Count: -1}, issue.InvalidCountId, ExitUsage},
		{"parts", &tuple.PartCountError{Want: 3, Got: 2}, issue.InvalidCountId, ExitUsage},
		{"wrapped", fmt.Errorf("outer: %w", &unpack.ArityMismatchError{}), issue.ArityMismatchId, ExitMismatch},
		{"catalog pattern", &catalog.InvalidPatternError{Name: "x", Err: &unpack.MalformedPatternError{}}, issue.MalformedPatternId, ExitUsage},
		{
			"actionable with issue",
			issue.NewErrorContext().WithOperation("load").WithIssue(issue.CatalogLoadFailedId).Wrap(errors.New("x")).BuildError(),
			issue.CatalogLoadFailedId,
			ExitGeneric,
		},
		{"plain", errors.New("x"), 0, ExitGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := classifyError(tt.err)
			if got != tt.want {
				t.Errorf("classifyError() = %d, want %d", got, tt.want)
			}
			if code := exitCodeFor(got); code != tt.code {
				t.Errorf("exitCodeFor() = %d, want %d", code, tt.code)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	cause := &unpack.ArityMismatchError{Expected: 1, Actual: 2}
	err := wrapError("unpack sequence", "a", cause, "hint")

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("wrapError() should return *issue.ActionableError, got %T", err)
	}
	if ae.Issue != issue.ArityMismatchId || ae.Resource != "a" || len(ae.Suggestions) != 1 {
		t.Errorf("unexpected error: %+v", *ae)
	}
	if !errors.Is(err, unpack.ErrArityMismatch) {
		t.Error("wrapError() should keep the cause in the chain")
	}
}
