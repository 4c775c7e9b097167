// SPDX-License-Identifier: MPL-2.0

// Package config handles easify configuration using Viper with CUE as the file format.
//
// Configuration is loaded from the --config path when given, else from
// $XDG_CONFIG_HOME/easify/config.cue (~/Library/Application Support/easify on
// macOS, %APPDATA%\easify on Windows), else from ./config.cue. Missing files
// are not an error: defaults apply. Every key can be overridden from the
// environment with the EASIFY_ prefix, e.g. EASIFY_OUTPUT_FORMAT=json or
// EASIFY_UI_VERBOSE=true.
//
// Files are validated against the embedded config_schema.cue before they are
// merged into Viper; value-level checks that CUE cannot see (such as values
// arriving from the environment) are applied by Config.IsValid after decoding.
package config
