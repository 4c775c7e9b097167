// SPDX-License-Identifier: MPL-2.0

package patternsyntax

import (
	"errors"
	"slices"
	"testing"

	"github.com/easify/easify/pkg/unpack"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []unpack.SlotSpec
	}{
		{"plain", "a, b", []unpack.SlotSpec{{Name: "a"}, {Name: "b"}}},
		{"rest", "a, *b, c", []unpack.SlotSpec{{Name: "a"}, {Name: "b", Rest: true}, {Name: "c"}}},
		{"mut", "mut a,b", []unpack.SlotSpec{{Name: "a", Mutable: true}, {Name: "b"}}},
		{"mut rest", "mut *rest", []unpack.SlotSpec{{Name: "rest", Mutable: true, Rest: true}}},
		{"rest mut", "* mut rest", []unpack.SlotSpec{{Name: "rest", Mutable: true, Rest: true}}},
		{"mut glued to star", "mut*rest", []unpack.SlotSpec{{Name: "rest", Mutable: true, Rest: true}}},
		{"trailing comma", "a, b,", []unpack.SlotSpec{{Name: "a"}, {Name: "b"}}},
		{"mut prefix in name", "mutable, mut_x", []unpack.SlotSpec{{Name: "mutable"}, {Name: "mut_x"}}},
		{"unicode and digits", "größe, _x1", []unpack.SlotSpec{{Name: "größe"}, {Name: "_x1"}}},
		{"duplicate rest passes through", "*a, *b", []unpack.SlotSpec{{Name: "a", Rest: true}, {Name: "b", Rest: true}}},
		{"whitespace", "\n\ta ,\t*b\n", []unpack.SlotSpec{{Name: "a"}, {Name: "b", Rest: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantOffset int
	}{
		{"empty", "", 0},
		{"blank", "   ", 3},
		{"lone comma", ",", 0},
		{"double comma", "a,,b", 2},
		{"missing comma", "a b", 2},
		{"digit start", "1a", 0},
		{"bare star", "a, *", 4},
		{"reserved mut", "a, mut", 3},
		{"double star", "**a", 1},
		{"non-ascii start", "é", 0},
		{"non-ascii letter", "naïve", 2},
		{"non-ascii digit", "x١", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.input)
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("Parse(%q) error should wrap ErrSyntax, got: %v", tt.input, err)
			}
			var synErr *SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("error should be *SyntaxError, got: %T", err)
			}
			if synErr.Offset != tt.wantOffset {
				t.Errorf("Parse(%q) offset = %d, want %d (%v)", tt.input, synErr.Offset, tt.wantOffset, err)
			}
		})
	}
}

func TestCompile(t *testing.T) {
	t.Parallel()

	p, err := Compile("a, *b, c")
	if err != nil {
		t.Fatalf("Compile() unexpected error: %v", err)
	}
	if r, ok := p.RestIndex(); !ok || r != 1 {
		t.Errorf("RestIndex() = (%d, %v), want (1, true)", r, ok)
	}

	if _, err := Compile("*a, b, *c"); !errors.Is(err, unpack.ErrMalformedPattern) {
		t.Errorf("two rest markers should be ErrMalformedPattern, got: %v", err)
	}
	if _, err := Compile("a, a", unpack.WithUniqueNames()); !errors.Is(err, unpack.ErrDuplicateSlot) {
		t.Errorf("options should reach the compiler, got: %v", err)
	}
}

func TestParseAssignment(t *testing.T) {
	t.Parallel()

	got, err := ParseAssignment("a, *b, c = unpacking")
	if err != nil {
		t.Fatalf("ParseAssignment() unexpected error: %v", err)
	}
	if got.Source != "unpacking" {
		t.Errorf("Source = %q, want unpacking", got.Source)
	}
	if Format(got.Slots) != "a, *b, c" {
		t.Errorf("Slots = %q", Format(got.Slots))
	}

	for _, bad := range []string{"a, b", "a, b = ", " = xs"} {
		if _, err := ParseAssignment(bad); !errors.Is(err, ErrSyntax) {
			t.Errorf("ParseAssignment(%q) should fail with ErrSyntax, got: %v", bad, err)
		}
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"a", "mut a, *b", "x, mut *y, z"} {
		specs, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", text, err)
		}
		if got := Format(specs); got != text {
			t.Errorf("Format(Parse(%q)) = %q", text, got)
		}
		p, err := unpack.Compile(specs)
		if err != nil {
			t.Fatalf("Compile() unexpected error: %v", err)
		}
		if p.String() != text {
			t.Errorf("Pattern.String() = %q, want %q", p.String(), text)
		}
	}
}

func TestIsIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"a", true},
		{"_", true},
		{"a1", true},
		{"1a", false},
		{"", false},
		{"mut", false},
		{"a-b", false},
		{"é", false},
		{"naïve", false},
		{"x١", false},
	}
	for _, tt := range tests {
		if got := IsIdent(tt.in); got != tt.want {
			t.Errorf("IsIdent(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
