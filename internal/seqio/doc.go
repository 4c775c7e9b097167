// SPDX-License-Identifier: MPL-2.0

// Package seqio reads string sequences from text and writes unpacked
// bindings in the CLI output formats.
package seqio
