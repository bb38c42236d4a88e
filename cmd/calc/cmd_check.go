package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/calc/expr"
	"github.com/dhamidi/calc/format"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var pf parserFlags

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Report the failing lines of calc files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.parserOptions(cmd, &pf)
			enc := format.NewTextEncoder(cmd.OutOrStdout())
			failed := false

			for _, file := range args {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				doc := expr.EvaluateDocument(data, append(opts, expr.WithFile(file))...)
				for _, l := range doc.Lines {
					if l.Outcome.Failed() {
						if err := enc.EncodeOutcome(l.Text, l.Outcome); err != nil {
							return fmt.Errorf("encode: %w", err)
						}
					}
				}
				errs := doc.Errors()
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d expressions, %d errors\n", file, len(doc.Lines), len(errs))
				if len(errs) > 0 {
					failed = true
				}
			}

			if failed {
				return errFailed
			}
			return nil
		},
	}

	pf.register(cmd)

	return cmd
}
