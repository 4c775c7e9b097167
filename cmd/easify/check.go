// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/easify/easify/pkg/unpack"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newCheckCommand(app *App) *cobra.Command {
	var (
		length      int
		uniqueNames bool
	)

	cmd := &cobra.Command{
		Use:   "check PATTERN",
		Short: "Compile a pattern and describe its slots",
		Long: `Compile a pattern and describe its slots, roles and minimum length.

With --len N, also show the index or range each slot takes from a
sequence of N elements.`,
		Example: `  easify check 'a, *b, c'
  easify check 'a, *b, c' --len 5
  easify check @pair`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.resolvePattern(args[0], uniqueNames)
			if err != nil {
				return app.fail(cmd, err)
			}

			w := cmd.OutOrStdout()
			describePattern(w, p)

			if !cmd.Flags().Changed("len") {
				return nil
			}
			layout, err := p.Layout(length)
			if err != nil {
				return app.fail(cmd, wrapError("lay out sequence", p.String(), err))
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("Layout for %d elements", length)))
			fmt.Fprintln(w, layoutTable(layout))
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "len", 0, "sequence length to lay out")
	cmd.Flags().BoolVar(&uniqueNames, "unique-names", false, "reject patterns that reuse a slot name")

	return cmd
}

func describePattern(w io.Writer, p *unpack.Pattern) {
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	rest := SubtitleStyle.Render("(none)")
	if r, ok := p.RestIndex(); ok {
		rest = valueStyle.Render(fmt.Sprintf("%s (position %d)", p.Slot(r).Name, r))
	}
	accepts := fmt.Sprintf("exactly %d", p.MinLen())
	if p.HasRest() {
		accepts = fmt.Sprintf("%d or more", p.MinLen())
	}

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Pattern"), valueStyle.Render(p.String()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Arity"), valueStyle.Render(strconv.Itoa(p.Arity())))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Rest slot"), rest)
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Accepts"), valueStyle.Render(accepts+" elements"))
	fmt.Fprintln(w)

	rows := make([][]string, 0, p.Arity())
	for _, s := range p.Slots() {
		mutable := ""
		if s.Mutable {
			mutable = "yes"
		}
		rows = append(rows, []string{strconv.Itoa(s.Position), s.Name, s.Role.String(), mutable})
	}
	fmt.Fprintln(w, newTable([]string{"#", "SLOT", "ROLE", "MUTABLE"}, rows))
}

func layoutTable(layout []unpack.Assignment) string {
	rows := make([][]string, 0, len(layout))
	for _, a := range layout {
		indices := strconv.Itoa(a.Index)
		if a.Slot.Role == unpack.RoleRest {
			indices = fmt.Sprintf("[%d, %d)", a.Start, a.End)
		}
		rows = append(rows, []string{a.Slot.Name, a.Slot.Role.String(), indices, strconv.Itoa(a.Len())})
	}
	return newTable([]string{"SLOT", "ROLE", "INDICES", "COUNT"}, rows)
}

func newTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtitleStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		Render()
}
