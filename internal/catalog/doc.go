// SPDX-License-Identifier: MPL-2.0

// Package catalog loads named patterns from CUE or TOML files.
//
// A catalog maps a pattern name to its slot list in the textual pattern
// syntax. Patterns are compiled on first use and cached, so a Catalog can be
// shared by concurrent callers.
//
//	// patterns.cue
//	patterns: {
//		pair:   "first, *rest"
//		triple: "x, y, z"
//	}
//
//	# patterns.toml
//	[patterns]
//	pair = "first, *rest"
package catalog
