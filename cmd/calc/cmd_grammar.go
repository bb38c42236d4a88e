package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/dhamidi/calc/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Inspect the expression grammar",
	}

	cmd.AddCommand(newGrammarShowCmd())
	cmd.AddCommand(newGrammarCheckCmd())
	cmd.AddCommand(newGrammarMatchCmd())

	return cmd
}

func newGrammarShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the grammar in EBNF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), grammar.Source())
			return err
		},
	}
}

func newGrammarCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Parse and verify the grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := grammar.Verify(); err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return errFailed
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (start %s)\n", grammar.Filename, grammar.Start)
			return nil
		},
	}
}

func newGrammarMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <expression>...",
		Short: "Report whether the grammar accepts an expression",
		Long: `Match an expression against the EBNF grammar without evaluating it.
Arithmetic errors such as division by zero are not detected here.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load()
			if err != nil {
				return err
			}
			src := strings.Join(args, " ")
			if !grammar.Accepts(g, src) {
				fmt.Fprintf(cmd.OutOrStdout(), "rejected: %s\n", src)
				return errFailed
			}
			fmt.Fprintf(cmd.OutOrStdout(), "accepted: %s\n", src)
			return nil
		},
	}
}

// printErrors prints one line per error when err wraps an error list.
func printErrors(w io.Writer, err error) {
	if inner := errors.Unwrap(err); inner != nil {
		err = inner
	}
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
		return
	}
	fmt.Fprintln(w, err)
}
