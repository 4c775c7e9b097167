// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ParseResult holds a decoded value together with the unified CUE value it
// was decoded from.
type ParseResult[T any] struct {
	Value *T

	// Unified is available for callers that need to walk fields in source
	// order, which a decoded Go map does not preserve.
	Unified cue.Value
}

// ParseAndDecode unifies data with the schema definition at schemaPath
// (e.g. "#Catalog"), validates the result and decodes it into T.
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	filename := options.filename
	if filename == "" {
		filename = "<input>"
	}

	if err := CheckFileSize(data, options.maxFileSize, filename); err != nil {
		return nil, err
	}

	unified, err := Unify(schema, data, schemaPath, filename)
	if err != nil {
		return nil, err
	}

	if err := unified.Validate(cue.Concrete(options.concrete)); err != nil {
		return nil, FormatError(err, filename)
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, filename)
	}

	return &ParseResult[T]{Value: &result, Unified: unified}, nil
}

// ParseFile reads path and decodes it with ParseAndDecode, naming the file in
// error messages.
func ParseFile[T any](schema []byte, path, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	opts = append([]Option{WithFilename(path)}, opts...)
	return ParseAndDecode[T](schema, data, schemaPath, opts...)
}

// Unify compiles schema and data in a fresh context and returns data unified
// with the definition at schemaPath. It does not validate.
func Unify(schema, data []byte, schemaPath, filename string) (cue.Value, error) {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return cue.Value{}, FormatError(userValue.Err(), filename)
	}

	root := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if root.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, root.Err())
	}

	return root.Unify(userValue), nil
}
