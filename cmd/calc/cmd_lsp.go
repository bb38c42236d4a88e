package main

import (
	"github.com/dhamidi/calc/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(a *app) *cobra.Command {
	var pf parserFlags

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version, a.parserOptions(cmd, &pf)...)
			return server.RunStdio()
		},
	}

	pf.register(cmd)

	return cmd
}
