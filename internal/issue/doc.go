// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved, and
// suggestions for the user. Each kind of failure the CLI can report also has a
// Markdown issue page, rendered with glamour by `easify explain`.
package issue
