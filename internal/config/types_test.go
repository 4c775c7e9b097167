// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestValueTypes_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    interface{ IsValid() (bool, []error) }
		want     bool
		sentinel error
	}{
		{"shell input", InputShell, true, nil},
		{"json input", InputJSON, true, nil},
		{"unknown input", InputFormat("xml"), false, ErrInvalidInputFormat},
		{"empty input", InputFormat(""), false, ErrInvalidInputFormat},
		{"toml output", OutputTOML, true, nil},
		{"unknown output", OutputFormat("yaml"), false, ErrInvalidOutputFormat},
		{"dark scheme", ColorSchemeDark, true, nil},
		{"unknown scheme", ColorScheme("neon"), false, ErrInvalidColorScheme},
		{"comma delimiter", Delimiter(","), true, nil},
		{"empty delimiter", Delimiter(""), false, ErrInvalidDelimiter},
		{"empty catalog path", CatalogPath(""), true, nil},
		{"catalog path", CatalogPath("/tmp/p.cue"), true, nil},
		{"blank catalog path", CatalogPath("  "), false, ErrInvalidCatalogPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			valid, errs := tt.value.IsValid()
			if valid != tt.want {
				t.Errorf("IsValid() = %v, want %v", valid, tt.want)
			}
			if tt.sentinel == nil {
				if len(errs) > 0 {
					t.Errorf("unexpected errors: %v", errs)
				}
				return
			}
			if len(errs) == 0 || !errors.Is(errs[0], tt.sentinel) {
				t.Errorf("errors %v should wrap %v", errs, tt.sentinel)
			}
		})
	}
}

func TestConfig_IsValid_CollectsAllFields(t *testing.T) {
	t.Parallel()

	cfg := Config{
		InputFormat:  "xml",
		Delimiter:    "",
		OutputFormat: "yaml",
		UI:           UIConfig{ColorScheme: "neon"},
	}
	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("config should be invalid")
	}
	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("error should be *InvalidConfigError, got: %T", errs[0])
	}
	if len(cfgErr.FieldErrors) != 4 {
		t.Errorf("expected 4 field errors, got %d: %v", len(cfgErr.FieldErrors), cfgErr.FieldErrors)
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Error("error should wrap ErrInvalidConfig")
	}
	var uiErr *InvalidUIConfigError
	if !errors.As(cfgErr.FieldErrors[3], &uiErr) || !errors.Is(uiErr, ErrInvalidUIConfig) {
		t.Errorf("last field error should be the UI config error, got: %v", cfgErr.FieldErrors[3])
	}
}
