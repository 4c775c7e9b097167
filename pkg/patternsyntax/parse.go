// SPDX-License-Identifier: MPL-2.0

// Package patternsyntax parses the textual slot-list form of an unpack
// pattern, e.g. "first, mut *rest, last", into unpack.SlotSpec values.
//
// Grammar:
//
//	list  = slot { "," slot } [ "," ]
//	slot  = [ "mut" ] [ "*" ] ident | "*" "mut" ident
//	ident = [A-Za-z_] { [A-Za-z0-9_] }
//
// The parser does not count rest markers: a list with several "*" slots parses
// fine and is rejected later by unpack.Compile with ErrMalformedPattern.
package patternsyntax

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/easify/easify/pkg/unpack"
)

const mutKeyword = "mut"

// ErrSyntax is the sentinel error wrapped by SyntaxError.
var ErrSyntax = errors.New("pattern syntax error")

type (
	// SyntaxError reports a malformed slot list.
	SyntaxError struct {
		// Offset is the byte offset in the input where the problem was found.
		Offset int
		Msg    string
	}

	// Assignment is a parsed `slots = source` statement.
	Assignment struct {
		Slots  []unpack.SlotSpec
		Source string
	}

	scanner struct {
		src string
		pos int
	}
)

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pattern syntax error at offset %d: %s", e.Offset, e.Msg)
}

// Unwrap returns ErrSyntax for errors.Is() compatibility.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Parse parses a slot list.
func Parse(text string) ([]unpack.SlotSpec, error) {
	s := &scanner{src: text}
	var out []unpack.SlotSpec
	for {
		s.skipSpace()
		if s.eof() {
			if len(out) == 0 {
				return nil, s.errorf("empty slot list")
			}
			return out, nil
		}
		spec, err := s.slot()
		if err != nil {
			return nil, err
		}
		out = append(out, spec)

		s.skipSpace()
		if s.eof() {
			return out, nil
		}
		if s.peek() != ',' {
			r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
			return nil, s.errorf("expected ',' after slot %q, found %q", spec.Name, r)
		}
		s.pos++
	}
}

// Compile parses text and compiles it into a pattern.
func Compile(text string, opts ...unpack.CompileOption) (*unpack.Pattern, error) {
	specs, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return unpack.Compile(specs, opts...)
}

// ParseAssignment parses "slots = source", the statement form of an unpack.
// Source is returned trimmed and uninterpreted.
func ParseAssignment(text string) (Assignment, error) {
	lhs, rhs, ok := strings.Cut(text, "=")
	if !ok {
		return Assignment{}, &SyntaxError{Offset: len(text), Msg: "missing '=' in assignment"}
	}
	source := strings.TrimSpace(rhs)
	if source == "" {
		return Assignment{}, &SyntaxError{Offset: len(text), Msg: "missing source after '='"}
	}
	slots, err := Parse(lhs)
	if err != nil {
		return Assignment{}, err
	}
	return Assignment{Slots: slots, Source: source}, nil
}

// Format renders specs in the syntax accepted by Parse.
func Format(specs []unpack.SlotSpec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

// IsIdent reports whether name is a valid slot identifier.
func IsIdent(name string) bool {
	if name == "" || name == mutKeyword {
		return false
	}
	for i, r := range name {
		if !isIdentRune(r, i == 0) {
			return false
		}
	}
	return true
}

func (s *scanner) slot() (unpack.SlotSpec, error) {
	var spec unpack.SlotSpec
	if s.keyword(mutKeyword) {
		spec.Mutable = true
		s.skipSpace()
	}
	if !s.eof() && s.peek() == '*' {
		spec.Rest = true
		s.pos++
		s.skipSpace()
		if !spec.Mutable && s.keyword(mutKeyword) {
			spec.Mutable = true
			s.skipSpace()
		}
	}
	name, err := s.ident()
	if err != nil {
		return unpack.SlotSpec{}, err
	}
	spec.Name = name
	return spec, nil
}

// keyword consumes kw when it appears as a whole word followed by more input.
func (s *scanner) keyword(kw string) bool {
	if !strings.HasPrefix(s.src[s.pos:], kw) {
		return false
	}
	next := s.pos + len(kw)
	if next >= len(s.src) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s.src[next:])
	if !unicode.IsSpace(r) && r != '*' {
		return false
	}
	s.pos = next
	return true
}

func (s *scanner) ident() (string, error) {
	start := s.pos
	for !s.eof() {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !isIdentRune(r, s.pos == start) {
			break
		}
		s.pos += size
	}
	if s.pos == start {
		if s.eof() {
			return "", s.errorf("expected slot name, found end of input")
		}
		r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
		return "", s.errorf("expected slot name, found %q", r)
	}
	name := s.src[start:s.pos]
	if name == mutKeyword {
		s.pos = start
		return "", s.errorf("%q is reserved and cannot name a slot", mutKeyword)
	}
	return name, nil
}

func (s *scanner) skipSpace() {
	for !s.eof() {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		s.pos += size
	}
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte { return s.src[s.pos] }

func (s *scanner) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: s.pos, Msg: fmt.Sprintf(format, args...)}
}

// isIdentRune accepts [A-Za-z_] and, after the first rune, [0-9].
func isIdentRune(r rune, first bool) bool {
	switch {
	case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		return true
	default:
		return !first && '0' <= r && r <= '9'
	}
}
