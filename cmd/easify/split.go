// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/easify/easify/internal/seqio"
	"github.com/easify/easify/pkg/tuple"

	"github.com/spf13/cobra"
)

func newSplitCommand(app *App) *cobra.Command {
	var (
		parts     int
		delimiter string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "split TEXT --parts K",
		Short: "Split TEXT on a delimiter into exactly K parts",
		Long: `Split TEXT on a delimiter and keep the first K parts.

Fails when TEXT has fewer than K parts. Parts after the K-th are dropped;
the last kept part does not absorb the remainder.`,
		Example: `  easify split 'a,b,c' --parts 2
  easify split 'k=v' --parts 2 --delimiter '='`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			delim := delimiter
			if !cmd.Flags().Changed("delimiter") {
				delim = app.cfg.Delimiter.String()
			}
			values, err := tuple.SplitExact(args[0], delim, parts)
			if err != nil {
				return app.fail(cmd, wrapError("split text", args[0], err))
			}
			if err := seqio.WriteList(cmd.OutOrStdout(), values, app.outputFormat(output), SuccessStyle); err != nil {
				return app.fail(cmd, wrapError("write output", "--output", err))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&parts, "parts", "k", 0, "number of parts to produce")
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "delimiter (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json or toml (default from config)")
	_ = cmd.MarkFlagRequired("parts")

	return cmd
}
