// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for easify.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/easify/easify/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand builds the full command tree around app.
func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "easify",
		Short: "Destructure sequences with head, rest and tail patterns",
		Long: TitleStyle.Render("easify") + SubtitleStyle.Render(" - Destructure sequences with head, rest and tail patterns") + `

A pattern is a comma-separated list of slots. Plain slots take one
element each; a single *rest slot takes everything in between.

` + SubtitleStyle.Render("Pattern syntax:") + `
  a, b          exactly two elements
  first, *rest  one or more elements
  *init, last   one or more elements
  a, *mid, z    two or more elements
  mut a, b      a mutable slot

` + SubtitleStyle.Render("Examples:") + `
  easify unpack 'first, *rest' 1 2 3      Bind first=1, rest=[2, 3]
  easify check 'a, *b, c' --len 5         Show which indices each slot takes
  easify unpack @pair --stdin < data.txt  Use a named catalog pattern
  easify explain arity-mismatch           Explain an error`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			app.setup(cmd.Context())
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.flags.configFile, "config", "", "config file (default is $HOME/.config/easify/config.cue)")
	rootCmd.PersistentFlags().StringVar(&app.flags.catalogPath, "catalog", "", "pattern catalog file (.cue or .toml)")

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.AddCommand(
		newUnpackCommand(app),
		newCheckCommand(app),
		newRepeatCommand(app),
		newSplitCommand(app),
		newCatalogCommand(app),
		newConfigCommand(app),
		newExplainCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	rootCmd := newRootCommand(NewApp(Dependencies{}))

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
