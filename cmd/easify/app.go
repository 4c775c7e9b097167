// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/easify/easify/internal/catalog"
	"github.com/easify/easify/internal/config"
	"github.com/easify/easify/internal/issue"
	"github.com/easify/easify/pkg/patternsyntax"
	"github.com/easify/easify/pkg/unpack"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type (
	// App wires CLI services and shared state. It is the composition root for
	// the CLI layer: every Cobra handler receives an App and reads
	// configuration, streams and the logger through it.
	App struct {
		Config ConfigProvider

		stdin   io.Reader
		stdout  io.Writer
		stderr  io.Writer
		environ []string
		logger  *log.Logger

		flags rootFlags
		// cfg is resolved once per invocation by the root pre-run hook.
		cfg    *config.Config
		cfgErr error
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config  ConfigProvider
		Stdin   io.Reader
		Stdout  io.Writer
		Stderr  io.Writer
		// Environ is visible to $VAR expansions in shell-format input.
		Environ []string
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	rootFlags struct {
		verbose     bool
		configFile  string
		catalogPath string
	}
)

// NewApp creates a new App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Environ == nil {
		deps.Environ = os.Environ()
	}

	return &App{
		Config:  deps.Config,
		stdin:   deps.Stdin,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
		environ: deps.Environ,
		logger:  newLogger(deps.Stderr, false),
		cfg:     config.DefaultConfig(),
	}
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

// loadOptions returns the config loading inputs selected by global flags.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: a.flags.configFile}
}

// setup loads configuration and configures logging. A broken config file is
// reported as a warning and defaults apply, so commands like `config init`
// still work; `config show` surfaces the error.
func (a *App) setup(ctx context.Context) {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		a.cfgErr = err
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.flags.verbose))
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg

	// Apply verbose from config if not set via flag
	if !a.flags.verbose {
		a.flags.verbose = cfg.UI.Verbose
	}
	a.logger = newLogger(a.stderr, a.flags.verbose)
	a.logger.Debug("configuration loaded", "input", cfg.InputFormat, "output", cfg.OutputFormat, "catalog", cfg.CatalogPath)
}

func (a *App) verbose() bool { return a.flags.verbose }

func (a *App) compileOptions(uniqueNames bool) []unpack.CompileOption {
	if uniqueNames || a.cfg.UniqueNames {
		return []unpack.CompileOption{unpack.WithUniqueNames()}
	}
	return nil
}

// loadCatalog loads the catalog named by --catalog, falling back to the
// configured catalog_path.
func (a *App) loadCatalog(uniqueNames bool) (*catalog.Catalog, error) {
	path := a.flags.catalogPath
	if path == "" {
		path = a.cfg.CatalogPath.String()
	}
	if path == "" {
		return nil, issue.NewErrorContext().
			WithOperation("load pattern catalog").
			WithSuggestion("Pass --catalog FILE").
			WithSuggestion("Set catalog_path in the configuration file").
			WithIssue(issue.CatalogLoadFailedId).
			Wrap(errors.New("no catalog configured")).
			BuildError()
	}

	cat, err := catalog.Load(path,
		catalog.WithLogger(a.logger),
		catalog.WithCompileOptions(a.compileOptions(uniqueNames)...))
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load pattern catalog").
			WithResource(path).
			WithSuggestion("Catalog files must end in .cue or .toml").
			WithIssue(issue.CatalogLoadFailedId).
			Wrap(err).
			BuildError()
	}
	return cat, nil
}

// resolvePattern compiles pattern text, or looks it up in the catalog when it
// is written as @name.
func (a *App) resolvePattern(text string, uniqueNames bool) (*unpack.Pattern, error) {
	name, ok := strings.CutPrefix(text, "@")
	if !ok {
		p, err := patternsyntax.Compile(text, a.compileOptions(uniqueNames)...)
		if err != nil {
			return nil, wrapError("compile pattern", text, err)
		}
		a.logger.Debug("pattern compiled", "pattern", p, "arity", p.Arity(), "rest", p.HasRest())
		return p, nil
	}

	cat, err := a.loadCatalog(uniqueNames)
	if err != nil {
		return nil, err
	}
	p, err := cat.Get(name)
	if err != nil {
		return nil, wrapError("resolve catalog pattern", text, err, "Run 'easify catalog list' to see available names")
	}
	return p, nil
}

// fail reports err on stderr and converts it into an ExitError carrying the
// exit code for its issue. Verbose mode also renders the issue page.
func (a *App) fail(cmd *cobra.Command, err error) error {
	id := classifyError(err)
	fmt.Fprintf(a.stderr, "%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, a.verbose()))

	if a.verbose() {
		if page := issue.Get(id); page != nil {
			if rendered, renderErr := page.Render(a.cfg.UI.ColorScheme.String()); renderErr == nil {
				fmt.Fprint(a.stderr, rendered)
			}
		}
	}

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return &ExitError{Code: exitCodeFor(id), Err: err}
}
