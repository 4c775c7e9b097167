// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// InputShell splits input into shell words, honoring quotes.
	InputShell InputFormat = "shell"
	// InputDelimited splits input on the configured delimiter.
	InputDelimited InputFormat = "delimited"
	// InputJSON reads a JSON array.
	InputJSON InputFormat = "json"

	// OutputText renders styled name = value lines.
	OutputText OutputFormat = "text"
	// OutputJSON renders a JSON object.
	OutputJSON OutputFormat = "json"
	// OutputTOML renders a TOML document.
	OutputTOML OutputFormat = "toml"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidInputFormat is returned when an InputFormat value is not recognized.
	ErrInvalidInputFormat = errors.New("invalid input format")
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidDelimiter is returned when a Delimiter is empty.
	ErrInvalidDelimiter = errors.New("invalid delimiter")
	// ErrInvalidCatalogPath is returned when a CatalogPath is whitespace-only.
	ErrInvalidCatalogPath = errors.New("invalid catalog path")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// InputFormat selects how sequence elements are read.
	InputFormat string

	// OutputFormat selects how bindings are written.
	OutputFormat string

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// Delimiter separates elements in the delimited input format.
	// It must be non-empty.
	Delimiter string

	// CatalogPath is a filesystem path to a pattern catalog.
	// The zero value ("") means no default catalog.
	CatalogPath string

	// InvalidValueError is returned when an enumerated or constrained config
	// value is not acceptable. Sentinel identifies which kind of value failed.
	InvalidValueError struct {
		Field    string
		Value    string
		Sentinel error
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It collects field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// InputFormat is the default --input for `easify unpack`.
		InputFormat InputFormat `json:"input_format" mapstructure:"input_format"`
		// Delimiter is used by the delimited input format.
		Delimiter Delimiter `json:"delimiter" mapstructure:"delimiter"`
		// OutputFormat is the default --output.
		OutputFormat OutputFormat `json:"output_format" mapstructure:"output_format"`
		// OwnedRest copies the rest sub-sequence instead of viewing the source.
		OwnedRest bool `json:"owned_rest" mapstructure:"owned_rest"`
		// UniqueNames rejects patterns that reuse a slot name.
		UniqueNames bool `json:"unique_names" mapstructure:"unique_names"`
		// CatalogPath is the default pattern catalog.
		CatalogPath CatalogPath `json:"catalog_path" mapstructure:"catalog_path"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		InputFormat:  InputShell,
		Delimiter:    ",",
		OutputFormat: OutputText,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: %q", e.Sentinel, e.Value)
}

// Unwrap returns the sentinel for the failing kind of value.
func (e *InvalidValueError) Unwrap() error { return e.Sentinel }

// String returns the string representation of the InputFormat.
func (f InputFormat) String() string { return string(f) }

// IsValid returns whether the InputFormat is one of the defined formats.
func (f InputFormat) IsValid() (bool, []error) {
	switch f {
	case InputShell, InputDelimited, InputJSON:
		return true, nil
	default:
		return false, []error{&InvalidValueError{Field: "input_format", Value: string(f), Sentinel: ErrInvalidInputFormat}}
	}
}

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// IsValid returns whether the OutputFormat is one of the defined formats.
func (f OutputFormat) IsValid() (bool, []error) {
	switch f {
	case OutputText, OutputJSON, OutputTOML:
		return true, nil
	default:
		return false, []error{&InvalidValueError{Field: "output_format", Value: string(f), Sentinel: ErrInvalidOutputFormat}}
	}
}

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// IsValid returns whether the ColorScheme is one of the defined schemes.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidValueError{Field: "ui.color_scheme", Value: string(c), Sentinel: ErrInvalidColorScheme}}
	}
}

// String returns the string representation of the Delimiter.
func (d Delimiter) String() string { return string(d) }

// IsValid returns whether the Delimiter is non-empty.
func (d Delimiter) IsValid() (bool, []error) {
	if d == "" {
		return false, []error{&InvalidValueError{Field: "delimiter", Value: string(d), Sentinel: ErrInvalidDelimiter}}
	}
	return true, nil
}

// String returns the string representation of the CatalogPath.
func (p CatalogPath) String() string { return string(p) }

// IsValid returns whether the CatalogPath is valid.
// The zero value ("") is valid. Non-zero values must not be whitespace-only.
func (p CatalogPath) IsValid() (bool, []error) {
	if p != "" && strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidValueError{Field: "catalog_path", Value: string(p), Sentinel: ErrInvalidCatalogPath}}
	}
	return true, nil
}

// IsValid returns whether the UIConfig has valid fields.
func (c UIConfig) IsValid() (bool, []error) {
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		return false, []error{&InvalidUIConfigError{FieldErrors: fieldErrs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields, collecting every
// field error rather than stopping at the first.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	for _, v := range []interface{ IsValid() (bool, []error) }{
		c.InputFormat, c.Delimiter, c.OutputFormat, c.CatalogPath, c.UI,
	} {
		if valid, fieldErrs := v.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
