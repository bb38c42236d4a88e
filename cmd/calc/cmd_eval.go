package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/calc/expr"
	"github.com/dhamidi/calc/format"
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	var file string
	var outputFormat string
	var pf parserFlags

	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate an expression and print its value",
		Long: `Evaluate an integer arithmetic expression.

The arguments are joined with spaces and evaluated as one expression.
With --file, every line of the file is evaluated; blank lines and lines
starting with # are skipped. Without arguments or --file, one expression
is read from stdin.

The exit status is 1 if any expression fails.

Examples:
  calc eval '(1+2)*3-4'         # result: 5
  calc eval -f totals.calc
  echo '8/4/2' | calc eval`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				outputFormat = a.cfg.Output.Format
			}
			enc, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			opts := a.parserOptions(cmd, &pf)

			if file != "" {
				if len(args) > 0 {
					return fmt.Errorf("--file cannot be combined with an expression argument")
				}
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				doc := expr.EvaluateDocument(data, append(opts, expr.WithFile(file))...)
				if err := enc.EncodeDocument(doc); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				if doc.Failed() {
					return errFailed
				}
				return nil
			}

			var src string
			if len(args) > 0 {
				src = strings.Join(args, " ")
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				src = strings.TrimRight(string(data), "\r\n")
			}

			out := expr.New(opts...).Evaluate(src)
			if err := enc.EncodeOutcome(src, out); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if out.Failed() {
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "evaluate every line of a file")
	cmd.Flags().StringVar(&outputFormat, "format", "text", "output format (text, json)")
	pf.register(cmd)

	return cmd
}
