package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dhamidi/calc/expr"
	"github.com/dhamidi/calc/format"
	"github.com/dhamidi/calc/watch"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newWatchCmd(a *app) *cobra.Command {
	var outputFormat string
	var pf parserFlags

	cmd := &cobra.Command{
		Use:   "watch <path>",
		Short: "Re-evaluate calc files whenever they change",
		Long: `Watch a calc file, or every matching file below a directory, and print
the value of each line whenever a file is written.

Files are matched by the watch.extensions setting (default .calc).
Stop with Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				outputFormat = a.cfg.Output.Format
			}
			out := cmd.OutOrStdout()
			enc, err := format.New(outputFormat, out)
			if err != nil {
				return err
			}
			opts := a.parserOptions(cmd, &pf)
			log := commonlog.GetLogger("calc.watch")

			handle := func(path string, removed bool) {
				if removed {
					fmt.Fprintf(out, "== %s removed\n", path)
					return
				}
				data, err := os.ReadFile(path)
				if err != nil {
					log.Errorf("read %s: %s", path, err)
					return
				}
				doc := expr.EvaluateDocument(data, append(opts, expr.WithFile(path))...)
				fmt.Fprintf(out, "== %s\n", path)
				if err := enc.EncodeDocument(doc); err != nil {
					log.Errorf("encode %s: %s", path, err)
				}
			}

			w, err := watch.New(args[0], watch.Config{
				Extensions: a.cfg.Watch.Extensions,
				Debounce:   a.cfg.Watch.Debounce,
			}, handle)
			if err != nil {
				return err
			}
			defer w.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return w.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&outputFormat, "format", "text", "output format (text, json)")
	pf.register(cmd)

	return cmd
}
