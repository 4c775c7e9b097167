// SPDX-License-Identifier: MPL-2.0

package seqio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/easify/easify/internal/config"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

var (
	// ErrInputParse is the sentinel error wrapped by InputParseError.
	ErrInputParse = errors.New("cannot parse input")
	// ErrEmptyDelimiter is returned by the delimited reader for "".
	ErrEmptyDelimiter = errors.New("delimiter must not be empty")
)

type (
	// InputParseError is returned when text is not valid in its input format.
	InputParseError struct {
		Format config.InputFormat
		Err    error
	}

	// ReadOptions configures Parse and Read.
	ReadOptions struct {
		Format config.InputFormat
		// Delimiter separates elements in the delimited format.
		Delimiter string
		// Env holds KEY=VALUE pairs visible to $VAR expansions in the shell
		// format. Unset variables expand to "".
		Env []string
	}
)

func (e *InputParseError) Error() string {
	return fmt.Sprintf("cannot parse %s input: %v", e.Format, e.Err)
}

// Unwrap exposes both ErrInputParse and the underlying cause.
func (e *InputParseError) Unwrap() []error { return []error{ErrInputParse, e.Err} }

// Read consumes r and parses it with Parse.
func Read(r io.Reader, opts ReadOptions) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return Parse(string(data), opts)
}

// Parse splits text into elements according to opts.Format.
func Parse(text string, opts ReadOptions) ([]string, error) {
	switch opts.Format {
	case config.InputShell, "":
		return ParseShell(text, opts.Env...)
	case config.InputDelimited:
		return ParseDelimited(text, opts.Delimiter)
	case config.InputJSON:
		return ParseJSON(text)
	default:
		_, errs := opts.Format.IsValid()
		return nil, errs[0]
	}
}

// ParseShell splits text into words the way a POSIX shell would: quotes
// group words, backslashes escape, and $VAR expands against env. Command
// substitution and globbing are not performed.
func ParseShell(text string, env ...string) ([]string, error) {
	var words []*syntax.Word
	err := syntax.NewParser().Words(strings.NewReader(text), func(w *syntax.Word) bool {
		words = append(words, w)
		return true
	})
	if err != nil {
		return nil, &InputParseError{Format: config.InputShell, Err: err}
	}

	cfg := &expand.Config{Env: expand.ListEnviron(env...)}
	fields, err := expand.Fields(cfg, words...)
	if err != nil {
		return nil, &InputParseError{Format: config.InputShell, Err: err}
	}
	if fields == nil {
		fields = []string{}
	}
	return fields, nil
}

// ParseDelimited splits text on delim after dropping one trailing newline.
// Empty text is the empty sequence; empty fields are kept.
func ParseDelimited(text, delim string) ([]string, error) {
	if delim == "" {
		return nil, &InputParseError{Format: config.InputDelimited, Err: ErrEmptyDelimiter}
	}
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	if text == "" {
		return []string{}, nil
	}
	return strings.Split(text, delim), nil
}

// ParseJSON reads a single JSON array. String elements are used as-is and
// other scalars keep their compact JSON text (1, true, null). Nested arrays
// and objects are rejected.
func ParseJSON(text string) ([]string, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, &InputParseError{Format: config.InputJSON, Err: err}
	}
	if dec.More() {
		return nil, &InputParseError{Format: config.InputJSON, Err: errors.New("unexpected data after array")}
	}
	if raw == nil {
		return nil, &InputParseError{Format: config.InputJSON, Err: errors.New("expected an array, got null")}
	}

	out := make([]string, len(raw))
	for i, elem := range raw {
		elem = bytes.TrimSpace(elem)
		switch elem[0] {
		case '"':
			if err := json.Unmarshal(elem, &out[i]); err != nil {
				return nil, &InputParseError{Format: config.InputJSON, Err: err}
			}
		case '[', '{':
			return nil, &InputParseError{Format: config.InputJSON, Err: fmt.Errorf("element %d is not a scalar", i)}
		default:
			out[i] = string(elem)
		}
	}
	return out, nil
}
