package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhamidi/calc/config"
	"github.com/dhamidi/calc/expr"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// errFailed reports an evaluation failure that has already been printed.
var errFailed = errors.New("evaluation failed")

type app struct {
	configPath string
	verbosity  int
	cfg        *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "calc",
		Short:         "Evaluate integer arithmetic expressions",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newEvalCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newLSPCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newGrammarCmd())

	return rootCmd
}

// setup loads the configuration and configures logging. An explicit
// --config must exist; the default path is optional.
func (a *app) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(a.configPath)
	} else {
		cfg, err = config.LoadOptional(a.configPath)
	}
	if err != nil {
		return err
	}
	a.cfg = cfg

	var logPath *string
	if cfg.Log.File != "" {
		logPath = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity+a.verbosity, logPath)
	return nil
}

// parserFlags override the parser section of the configuration.
type parserFlags struct {
	allowTrailing bool
	maxDepth      int
}

func (f *parserFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.allowTrailing, "allow-trailing", false, "evaluate the valid prefix and ignore trailing input")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", expr.DefaultMaxDepth, "maximum parenthesis nesting, 0 for no limit")
}

func (a *app) parserOptions(cmd *cobra.Command, f *parserFlags) []expr.Option {
	opts := a.cfg.ParserOptions()
	if f.allowTrailing {
		opts = append(opts, expr.AllowTrailingInput())
	}
	if cmd.Flags().Changed("max-depth") {
		opts = append(opts, expr.WithMaxDepth(f.maxDepth))
	}
	return opts
}
