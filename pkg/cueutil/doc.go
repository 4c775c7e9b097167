// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents against an embedded schema.
//
// Both the application config and pattern catalog files go through the same
// three steps:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with a schema definition
//  3. Validate and decode into a Go value
//
// # Usage
//
//	//go:embed catalog_schema.cue
//	var schema []byte
//
//	result, err := cueutil.ParseAndDecode[catalogFile](
//	    schema,
//	    data,
//	    "#Catalog",
//	    cueutil.WithFilename("patterns.cue"),
//	)
//	if err != nil {
//	    return nil, err // error carries file and CUE path, e.g. patterns.cue: patterns.pair: ...
//	}
//	return result.Value, nil
package cueutil
