// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/easify/easify/internal/config"
	"github.com/easify/easify/internal/testutil"
)

func TestUnpack_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "head and rest",
			args: []string{"unpack", "first, *rest", "1", "2", "3"},
			want: "first = 1\n*rest = [2, 3]\n",
		},
		{
			name: "rest and tail",
			args: []string{"unpack", "*init, last", "a", "b", "c"},
			want: "*init = [a, b]\nlast  = c\n",
		},
		{
			name: "empty rest",
			args: []string{"unpack", "a, *b, c", "x", "y"},
			want: "a  = x\n*b = []\nc  = y\n",
		},
		{
			name: "exact arity",
			args: []string{"unpack", "x, y", "1", "2"},
			want: "x = 1\ny = 2\n",
		},
		{
			name: "owned",
			args: []string{"unpack", "--owned", "h, *t", "1", "2"},
			want: "h  = 1\n*t = [2]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := runCLI(t, nil, "", tt.args...)
			if res.err != nil {
				t.Fatalf("unexpected error: %v\nstderr: %s", res.err, res.stderr)
			}
			if res.stdout != tt.want {
				t.Errorf("stdout =\n%s\nwant\n%s", res.stdout, tt.want)
			}
		})
	}
}

func TestUnpack_JSON(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "", "unpack", "-o", "json", "a, *b, c", "1", "2", "3", "4")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}

	var got struct {
		Pattern  string `json:"pattern"`
		Bindings []struct {
			Name   string   `json:"name"`
			Role   string   `json:"role"`
			Value  string   `json:"value"`
			Values []string `json:"values"`
		} `json:"bindings"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, res.stdout)
	}
	if got.Pattern != "a, *b, c" || len(got.Bindings) != 3 {
		t.Fatalf("unexpected result: %s", res.stdout)
	}
	if got.Bindings[0].Value != "1" || strings.Join(got.Bindings[1].Values, " ") != "2 3" || got.Bindings[2].Value != "4" {
		t.Errorf("unexpected bindings: %s", res.stdout)
	}
}

func TestUnpack_ConfigDefaults(t *testing.T) {
	t.Parallel()

	provider := withConfig(func(c *config.Config) {
		c.OutputFormat = config.OutputTOML
		c.InputFormat = config.InputDelimited
		c.Delimiter = ";"
	})
	res := runCLI(t, provider, "1;2;3\n", "unpack", "--stdin", "a, *b")
	if res.err != nil {
		t.Fatalf("unexpected error: %v\nstderr: %s", res.err, res.stderr)
	}
	for _, want := range []string{`pattern = 'a, *b'`, `[[bindings]]`, `name = 'b'`} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("stdout should contain %q:\n%s", want, res.stdout)
		}
	}
}

func TestUnpack_Stdin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"shell", "'a b' c\n", []string{"unpack", "--stdin", "x, y"}, "x = a b\ny = c\n"},
		{"shell env", "$GREETING \"$UNSET\"world\n", []string{"unpack", "--stdin", "x, y"}, "x = hello\ny = world\n"},
		{"json", `["1", 2]`, []string{"unpack", "--stdin", "--input", "json", "x, y"}, "x = 1\ny = 2\n"},
		{"delimited", "p|q|r", []string{"unpack", "--stdin", "--input", "delimited", "--delimiter", "|", "*i, l"}, "*i = [p, q]\nl  = r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := runCLI(t, nil, tt.stdin, tt.args...)
			if res.err != nil {
				t.Fatalf("unexpected error: %v\nstderr: %s", res.err, res.stderr)
			}
			if res.stdout != tt.want {
				t.Errorf("stdout =\n%s\nwant\n%s", res.stdout, tt.want)
			}
		})
	}
}

func TestUnpack_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stdin    string
		args     []string
		code     int
		contains []string
	}{
		{
			name:     "arity mismatch",
			args:     []string{"unpack", "a, b", "1"},
			code:     ExitMismatch,
			contains: []string{"pattern expects exactly 2 elements, sequence has 1", "easify explain arity-mismatch"},
		},
		{
			name:     "insufficient elements",
			args:     []string{"unpack", "a, *b, c", "1"},
			code:     ExitMismatch,
			contains: []string{"needs at least 2 elements, sequence has 1", "easify explain insufficient-elements"},
		},
		{
			name:     "malformed pattern",
			args:     []string{"unpack", "*a, *b", "1"},
			code:     ExitUsage,
			contains: []string{"at most one rest slot", "easify explain malformed-pattern"},
		},
		{
			name:     "syntax error",
			args:     []string{"unpack", "a,,b", "1"},
			code:     ExitUsage,
			contains: []string{"pattern syntax error", "easify explain pattern-syntax"},
		},
		{
			name:     "duplicate with unique names",
			args:     []string{"unpack", "--unique-names", "a, a", "1", "2"},
			code:     ExitUsage,
			contains: []string{"duplicate slot name", "easify explain duplicate-slot"},
		},
		{
			name:     "stdin and arguments",
			args:     []string{"unpack", "--stdin", "a", "1"},
			code:     ExitGeneric,
			contains: []string{"both as arguments and with --stdin"},
		},
		{
			name:     "bad json input",
			stdin:    "{",
			args:     []string{"unpack", "--stdin", "--input", "json", "a"},
			code:     ExitGeneric,
			contains: []string{"cannot parse json input", "easify explain input-parse"},
		},
		{
			name:     "bad output format",
			args:     []string{"unpack", "-o", "yaml", "a", "1"},
			code:     ExitGeneric,
			contains: []string{"invalid output format"},
		},
		{
			name:     "catalog reference without catalog",
			args:     []string{"unpack", "@pair", "1"},
			code:     ExitGeneric,
			contains: []string{"no catalog configured", "--catalog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := runCLI(t, nil, tt.stdin, tt.args...)
			if res.code != tt.code {
				t.Errorf("exit code = %d, want %d (err: %v)", res.code, tt.code, res.err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(res.stderr, want) {
					t.Errorf("stderr should contain %q:\n%s", want, res.stderr)
				}
			}
			if res.stdout != "" {
				t.Errorf("stdout should be empty on failure, got %q", res.stdout)
			}
		})
	}
}

func TestUnpack_VerboseShowsErrorChain(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "", "-v", "unpack", "a, b", "1")
	if res.code != ExitMismatch {
		t.Fatalf("exit code = %d, want %d", res.code, ExitMismatch)
	}
	if !strings.Contains(res.stderr, "Error chain:") {
		t.Errorf("verbose stderr should include the error chain:\n%s", res.stderr)
	}
	if !strings.Contains(res.stderr, "Arity mismatch") {
		t.Errorf("verbose stderr should include the issue page:\n%s", res.stderr)
	}
}

func TestUnpack_Catalog(t *testing.T) {
	t.Parallel()

	path := testutil.TempFile(t, "patterns.toml", "[patterns]\npair = 'first, *rest'\n")

	res := runCLI(t, nil, "", "--catalog", path, "unpack", "@pair", "1", "2", "3")
	if res.err != nil {
		t.Fatalf("unexpected error: %v\nstderr: %s", res.err, res.stderr)
	}
	if res.stdout != "first = 1\n*rest = [2, 3]\n" {
		t.Errorf("stdout = %q", res.stdout)
	}

	provider := withConfig(func(c *config.Config) { c.CatalogPath = config.CatalogPath(path) })
	res = runCLI(t, provider, "", "unpack", "@missing", "1")
	if res.code != ExitUsage || !strings.Contains(res.stderr, "easify explain pattern-not-found") {
		t.Errorf("missing pattern: code = %d, stderr:\n%s", res.code, res.stderr)
	}
}
