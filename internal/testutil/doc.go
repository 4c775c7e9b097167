// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that fail fast on
// setup errors: writing fixture files (WriteFile, TempFile), changing
// directory (MustChdir) and pointing the config directory at a temporary
// location (SetConfigHome).
package testutil
