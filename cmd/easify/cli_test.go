// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/easify/easify/internal/config"

	"github.com/charmbracelet/x/ansi"
)

type (
	staticConfig struct {
		cfg *config.Config
		err error
	}

	cliResult struct {
		stdout string
		stderr string
		code   int
		err    error
	}
)

func (s staticConfig) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.cfg == nil {
		return config.DefaultConfig(), nil
	}
	return s.cfg, nil
}

// runCLI executes the command tree in-process with injected streams.
func runCLI(t *testing.T, provider ConfigProvider, stdin string, args ...string) cliResult {
	t.Helper()

	if provider == nil {
		provider = staticConfig{}
	}
	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Config:  provider,
		Stdin:   strings.NewReader(stdin),
		Stdout:  &stdout,
		Stderr:  &stderr,
		Environ: []string{"GREETING=hello"},
	})
	root := newRootCommand(app)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	res := cliResult{stdout: ansi.Strip(stdout.String()), stderr: ansi.Strip(stderr.String()), err: err}
	var exitErr *ExitError
	switch {
	case errors.As(err, &exitErr):
		res.code = exitErr.Code
	case err != nil:
		res.code = ExitGeneric
	}
	return res
}

func withConfig(mutate func(*config.Config)) ConfigProvider {
	cfg := config.DefaultConfig()
	mutate(cfg)
	return staticConfig{cfg: cfg}
}

func withConfigVerbose() ConfigProvider {
	return withConfig(func(c *config.Config) { c.UI.Verbose = true })
}
