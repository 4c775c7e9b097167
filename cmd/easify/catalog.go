// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/easify/easify/internal/catalog"

	"github.com/spf13/cobra"
)

// newCatalogCommand creates the `easify catalog` command tree.
func newCatalogCommand(app *App) *cobra.Command {
	catCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the pattern catalog",
		Long: `Inspect the pattern catalog.

The catalog is read from --catalog or the catalog_path configuration key.
Entries can be used anywhere a pattern is expected as @name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	catCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List catalog patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.loadCatalog(false)
			if err != nil {
				return app.fail(cmd, err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n\n", TitleStyle.Render("Patterns in"), SubtitleStyle.Render(cat.Source()))
			if cat.Len() == 0 {
				fmt.Fprintln(w, SubtitleStyle.Render("(empty)"))
				return nil
			}

			rows := make([][]string, 0, cat.Len())
			invalid := 0
			for _, name := range cat.Names() {
				text, _ := cat.Text(name)
				status := SuccessStyle.Render("ok")
				if _, err := cat.Get(name); err != nil {
					status = ErrorStyle.Render("invalid")
					invalid++
				}
				rows = append(rows, []string{"@" + name, text, status})
			}
			fmt.Fprintln(w, newTable([]string{"NAME", "PATTERN", "STATUS"}, rows))

			if invalid > 0 {
				app.logger.Warn("catalog has invalid patterns", "count", invalid)
				return app.fail(cmd, wrapError("validate pattern catalog", cat.Source(), cat.Validate()))
			}
			return nil
		},
	})

	catCmd.AddCommand(&cobra.Command{
		Use:   "show NAME",
		Short: "Describe a catalog pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.resolvePattern("@"+strings.TrimPrefix(args[0], "@"), false)
			if err != nil {
				return app.fail(cmd, err)
			}
			describePattern(cmd.OutOrStdout(), p)
			return nil
		},
	})

	var format string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Print the catalog as CUE or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.loadCatalog(false)
			if err != nil {
				return app.fail(cmd, err)
			}
			data, err := cat.Export(catalog.Format(format))
			if err != nil {
				return app.fail(cmd, wrapError("export pattern catalog", format, err))
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", string(catalog.FormatCUE), "export format: cue or toml")
	catCmd.AddCommand(exportCmd)

	return catCmd
}
