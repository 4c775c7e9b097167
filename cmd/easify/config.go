// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/easify/easify/internal/config"
	"github.com/easify/easify/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `easify config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage easify configuration",
		Long: `Manage easify configuration.

Configuration is stored in:
  - Linux: ~/.config/easify/config.cue
  - macOS: ~/Library/Application Support/easify/config.cue
  - Windows: %APPDATA%\easify\config.cue

A config.cue in the current directory is used when the user file is
missing. Every key can be overridden with an EASIFY_ environment variable,
for example EASIFY_OUTPUT_FORMAT=json or EASIFY_UI_VERBOSE=true.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.cfgErr != nil {
				return app.fail(cmd, wrapConfigError(app.cfgErr))
			}
			path, _ := config.FilePath(app.loadOptions())
			showConfig(cmd.OutOrStdout(), app.cfg, path)
			return nil
		},
	})

	var dir string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfig(dir)
			if err != nil {
				return app.fail(cmd, wrapConfigError(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", SuccessStyle.Render("Configuration file:"), path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&dir, "dir", "", "directory to create config.cue in (default is the user config directory)")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			path, err := config.FilePath(app.loadOptions())
			if err != nil {
				return app.fail(cmd, wrapConfigError(err))
			}
			if path != "" {
				fmt.Fprintln(w, path)
				return nil
			}
			dir, err := config.ConfigDir()
			if err != nil {
				return app.fail(cmd, wrapConfigError(err))
			}
			fmt.Fprintf(w, "%s %s\n", SubtitleStyle.Render("(using defaults; create with 'easify config init')"), dir)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), config.GenerateCUE(app.cfg))
			return err
		},
	})

	return cfgCmd
}

func showConfig(w io.Writer, cfg *config.Config, path string) {
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if path != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	catalogPath := valueStyle.Render(cfg.CatalogPath.String())
	if cfg.CatalogPath == "" {
		catalogPath = SubtitleStyle.Render("(none)")
	}

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("input_format"), valueStyle.Render(cfg.InputFormat.String()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("delimiter"), valueStyle.Render(strconv.Quote(cfg.Delimiter.String())))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("output_format"), valueStyle.Render(cfg.OutputFormat.String()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("owned_rest"), valueStyle.Render(strconv.FormatBool(cfg.OwnedRest)))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("unique_names"), valueStyle.Render(strconv.FormatBool(cfg.UniqueNames)))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("catalog_path"), catalogPath)
	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render("UI"))
	fmt.Fprintf(w, "  %s: %s\n", keyStyle.Render("color_scheme"), valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  %s: %s\n", keyStyle.Render("verbose"), valueStyle.Render(strconv.FormatBool(cfg.UI.Verbose)))
}

// wrapConfigError links config failures to their issue page, keeping the
// context of errors that already carry it.
func wrapConfigError(err error) error {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		if ae.Issue == 0 {
			ae.Issue = issue.ConfigLoadFailedId
		}
		return ae
	}
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithIssue(issue.ConfigLoadFailedId).
		Wrap(err).
		BuildError()
}
