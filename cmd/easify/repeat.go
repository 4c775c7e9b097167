// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"github.com/easify/easify/internal/seqio"
	"github.com/easify/easify/pkg/tuple"

	"github.com/spf13/cobra"
)

func newRepeatCommand(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "repeat VALUE COUNT",
		Short: "Build a sequence of COUNT copies of VALUE",
		Example: `  easify repeat 5 3
  easify repeat x 0 --output json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[1])
			if err != nil {
				return app.fail(cmd, wrapError("repeat value", args[1],
					fmt.Errorf("%w: %q is not an integer", tuple.ErrInvalidCount, args[1])))
			}
			values, err := tuple.Repeat(args[0], count)
			if err != nil {
				return app.fail(cmd, wrapError("repeat value", args[0], err))
			}
			if err := seqio.WriteList(cmd.OutOrStdout(), values, app.outputFormat(output), SuccessStyle); err != nil {
				return app.fail(cmd, wrapError("write output", "--output", err))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json or toml (default from config)")

	return cmd
}
