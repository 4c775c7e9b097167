// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"runtime"
	"testing"
)

// SetConfigHome points the platform's user config root at dir for the rest
// of the test and returns the root config.ConfigDir will build on.
//
// Platform handling:
//   - Windows: sets APPDATA
//   - macOS: sets HOME (config lives under Library/Application Support)
//   - Linux/others: sets XDG_CONFIG_HOME
//
// Uses t.Setenv, so callers cannot be parallel.
func SetConfigHome(t *testing.T, dir string) string {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		t.Setenv("APPDATA", dir)
		return dir
	case "darwin":
		t.Setenv("HOME", dir)
		return filepath.Join(dir, "Library", "Application Support")
	default:
		t.Setenv("XDG_CONFIG_HOME", dir)
		return dir
	}
}
