// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/easify/easify/internal/config"
	"github.com/easify/easify/internal/seqio"
	"github.com/easify/easify/pkg/unpack"

	"github.com/spf13/cobra"
)

type unpackFlags struct {
	stdin       bool
	input       string
	delimiter   string
	output      string
	owned       bool
	uniqueNames bool
}

func newUnpackCommand(app *App) *cobra.Command {
	var flags unpackFlags

	cmd := &cobra.Command{
		Use:   "unpack PATTERN [ELEMENT...]",
		Short: "Bind the elements of a sequence to the slots of a pattern",
		Long: `Bind the elements of a sequence to the slots of a pattern.

Elements come from the remaining arguments, or from standard input with
--stdin. Input read from stdin is split according to --input:

  shell      words split like a POSIX shell (default)
  delimited  text split on --delimiter
  json       a single JSON array

PATTERN may be @name to use an entry from the pattern catalog.`,
		Example: `  easify unpack 'first, *rest' 1 2 3
  easify unpack 'a, *b, c' --output json 1 2
  echo '["x", "y", "z"]' | easify unpack '*init, last' --stdin --input json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnpack(cmd, app, flags, args[0], args[1:])
		},
	}

	cmd.Flags().BoolVar(&flags.stdin, "stdin", false, "read elements from standard input")
	cmd.Flags().StringVar(&flags.input, "input", "", "stdin format: shell, delimited or json (default from config)")
	cmd.Flags().StringVar(&flags.delimiter, "delimiter", "", "element delimiter for --input delimited (default from config)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output format: text, json or toml (default from config)")
	cmd.Flags().BoolVar(&flags.owned, "owned", false, "consume the sequence so every binding owns its elements")
	cmd.Flags().BoolVar(&flags.uniqueNames, "unique-names", false, "reject patterns that reuse a slot name")

	return cmd
}

func runUnpack(cmd *cobra.Command, app *App, flags unpackFlags, patternText string, elems []string) error {
	output := app.outputFormat(flags.output)
	if valid, errs := output.IsValid(); !valid {
		return app.fail(cmd, wrapError("unpack sequence", "--output", errs[0]))
	}

	p, err := app.resolvePattern(patternText, flags.uniqueNames)
	if err != nil {
		return app.fail(cmd, err)
	}

	if flags.stdin {
		if len(elems) > 0 {
			return app.fail(cmd, wrapError("unpack sequence", "", errors.New("elements given both as arguments and with --stdin"),
				"Drop the ELEMENT arguments or the --stdin flag"))
		}
		opts := seqio.ReadOptions{
			Format:    app.cfg.InputFormat,
			Delimiter: app.cfg.Delimiter.String(),
			Env:       app.environ,
		}
		if flags.input != "" {
			opts.Format = config.InputFormat(flags.input)
		}
		if flags.delimiter != "" {
			opts.Delimiter = flags.delimiter
		}
		elems, err = seqio.Read(cmd.InOrStdin(), opts)
		if err != nil {
			return app.fail(cmd, wrapError("read sequence", "stdin", err, "Check the --input format"))
		}
	}

	app.logger.Debug("unpacking", "pattern", p, "elements", len(elems))

	owned := flags.owned || (!cmd.Flags().Changed("owned") && app.cfg.OwnedRest)
	var bindings *unpack.Bindings[string]
	if owned {
		bindings, err = unpack.Consume(p, &elems)
	} else {
		bindings, err = unpack.Unpack(p, elems)
	}
	if err != nil {
		return app.fail(cmd, wrapError("unpack sequence", p.String(), err,
			"Run 'easify check \""+p.String()+"\"' to see the accepted lengths"))
	}

	return seqio.Write(cmd.OutOrStdout(), seqio.NewResult(p, bindings), output, bindingStyles())
}

// outputFormat picks the --output flag value, falling back to the config.
func (a *App) outputFormat(flag string) config.OutputFormat {
	if flag != "" {
		return config.OutputFormat(flag)
	}
	return a.cfg.OutputFormat
}
