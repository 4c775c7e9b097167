// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/easify/easify/internal/issue"

	"github.com/spf13/cobra"
)

var errUnknownIssue = errors.New("unknown issue")

func newExplainCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [ISSUE]",
		Short: "Explain an error and how to fix it",
		Long: `Explain an error and how to fix it.

Without arguments, lists every issue. Failing commands name the issue to
look up, for example: easify explain arity-mismatch`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var slugs []string
			for _, is := range issue.Values() {
				slugs = append(slugs, is.Slug())
			}
			return slugs, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(w, TitleStyle.Render("Issues"))
				fmt.Fprintln(w)
				rows := make([][]string, 0, len(issue.Values()))
				for _, is := range issue.Values() {
					rows = append(rows, []string{is.Slug(), issueTitle(is)})
				}
				fmt.Fprintln(w, newTable([]string{"ISSUE", "SUMMARY"}, rows))
				return nil
			}

			is := issue.BySlug(args[0])
			if is == nil {
				return app.fail(cmd, issue.NewErrorContext().
					WithOperation("explain issue").
					WithResource(args[0]).
					WithSuggestion("Run 'easify explain' to list issues").
					Wrap(errUnknownIssue).
					BuildError())
			}
			rendered, err := is.Render(app.cfg.UI.ColorScheme.String())
			if err != nil {
				return app.fail(cmd, wrapError("render issue", args[0], err))
			}
			fmt.Fprint(w, rendered)
			return nil
		},
	}
}

// issueTitle returns the first markdown heading of an issue page.
func issueTitle(is *issue.Issue) string {
	for line := range strings.Lines(string(is.MarkdownMsg())) {
		if title, ok := strings.CutPrefix(strings.TrimSpace(line), "# "); ok {
			return strings.TrimSuffix(title, "!")
		}
	}
	return is.Slug()
}
