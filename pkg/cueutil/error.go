// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// ErrFileTooLarge is the sentinel error wrapped by FileTooLargeError.
var ErrFileTooLarge = errors.New("file too large")

// FileTooLargeError is returned when a document exceeds the size limit.
type FileTooLargeError struct {
	Filename string
	Size     int64
	Max      int64
}

// Error implements the error interface.
func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s: file size %d bytes exceeds maximum %d bytes", e.Filename, e.Size, e.Max)
}

// Unwrap returns ErrFileTooLarge for errors.Is() compatibility.
func (e *FileTooLargeError) Unwrap() error { return ErrFileTooLarge }

// FormatError flattens a CUE error into one line per problem, each prefixed
// with its JSON-style path:
//
//	patterns.cue: patterns.pair: conflicting values 1 and string
//	config.cue: output_format: 3 errors in empty disjunction
//
// Non-CUE errors are returned wrapped with the file path.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	list := cueerrors.Errors(err)
	if len(list) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	lines := make([]string, 0, len(list))
	for _, e := range list {
		pathStr := formatPath(cueerrors.Path(e))
		msg := e.Error()
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, pathStr), ":"))
		}
		if pathStr != "" {
			lines = append(lines, pathStr+": "+msg)
		} else {
			lines = append(lines, msg)
		}
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filePath, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// formatPath turns ["slots", "0", "name"] into "slots[0].name".
func formatPath(path []string) string {
	var sb strings.Builder
	for i, part := range path {
		if i > 0 && isIndex(part) {
			sb.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(part)
	}
	return sb.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize fails with *FileTooLargeError when data exceeds maxSize.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if size := int64(len(data)); size > maxSize {
		return &FileTooLargeError{Filename: filename, Size: size, Max: maxSize}
	}
	return nil
}
