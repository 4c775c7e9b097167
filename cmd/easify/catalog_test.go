// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"

	"github.com/easify/easify/internal/testutil"

	"github.com/pelletier/go-toml/v2"
)

const testCatalog = `
patterns: {
	pair:   "first, *rest"
	triple: "x, y, z"
}
`

func TestCatalog_List(t *testing.T) {
	t.Parallel()

	path := testutil.TempFile(t, "patterns.cue", testCatalog)
	res := runCLI(t, nil, "", "--catalog", path, "catalog", "list")
	if res.err != nil {
		t.Fatalf("unexpected error: %v\nstderr: %s", res.err, res.stderr)
	}
	for _, want := range []string{path, "@pair", "first, *rest", "@triple", "ok"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("stdout should contain %q:\n%s", want, res.stdout)
		}
	}
	if strings.Index(res.stdout, "@pair") > strings.Index(res.stdout, "@triple") {
		t.Errorf("entries should be sorted by name:\n%s", res.stdout)
	}
}

func TestCatalog_ListInvalid(t *testing.T) {
	t.Parallel()

	path := testutil.TempFile(t, "patterns.toml", "[patterns]\ngood = 'a'\nbad = '*a, *b'\n")
	res := runCLI(t, nil, "", "--catalog", path, "catalog", "list")
	if res.code != ExitUsage {
		t.Fatalf("exit code = %d, want %d (err: %v)", res.code, ExitUsage, res.err)
	}
	if !strings.Contains(res.stdout, "invalid") {
		t.Errorf("stdout should mark the bad entry:\n%s", res.stdout)
	}
	if !strings.Contains(res.stderr, `catalog pattern "bad"`) {
		t.Errorf("stderr should name the bad entry:\n%s", res.stderr)
	}
}

func TestCatalog_Show(t *testing.T) {
	t.Parallel()

	path := testutil.TempFile(t, "patterns.cue", testCatalog)
	for _, name := range []string{"pair", "@pair"} {
		res := runCLI(t, nil, "", "--catalog", path, "catalog", "show", name)
		if res.err != nil {
			t.Fatalf("show %s: unexpected error: %v", name, res.err)
		}
		if !strings.Contains(res.stdout, "Pattern: first, *rest") {
			t.Errorf("show %s: stdout =\n%s", name, res.stdout)
		}
	}

	res := runCLI(t, nil, "", "--catalog", path, "catalog", "show", "nope")
	if res.code != ExitUsage {
		t.Errorf("show nope: exit code = %d, want %d", res.code, ExitUsage)
	}
}

func TestCatalog_Export(t *testing.T) {
	t.Parallel()

	path := testutil.TempFile(t, "patterns.cue", testCatalog)

	res := runCLI(t, nil, "", "--catalog", path, "catalog", "export", "--format", "toml")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	var got struct {
		Patterns map[string]string `toml:"patterns"`
	}
	if err := toml.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("export is not TOML: %v\n%s", err, res.stdout)
	}
	if got.Patterns["pair"] != "first, *rest" || got.Patterns["triple"] != "x, y, z" {
		t.Errorf("unexpected export: %v", got.Patterns)
	}

	res = runCLI(t, nil, "", "--catalog", path, "catalog", "export")
	if res.err != nil || !strings.Contains(res.stdout, "patterns:") {
		t.Errorf("default cue export: err = %v, stdout:\n%s", res.err, res.stdout)
	}

	res = runCLI(t, nil, "", "--catalog", path, "catalog", "export", "--format", "yaml")
	if res.code != ExitGeneric || !strings.Contains(res.stderr, "unsupported catalog format") {
		t.Errorf("yaml export: code = %d, stderr:\n%s", res.code, res.stderr)
	}
}

func TestCatalog_LoadFailure(t *testing.T) {
	t.Parallel()

	path := testutil.TempFile(t, "patterns.cue", "patterns: { pair: 1 }")
	res := runCLI(t, nil, "", "--catalog", path, "catalog", "list")
	if res.code != ExitGeneric {
		t.Fatalf("exit code = %d, want %d", res.code, ExitGeneric)
	}
	if !strings.Contains(res.stderr, "easify explain catalog-load") {
		t.Errorf("stderr should point at catalog-load:\n%s", res.stderr)
	}
}
