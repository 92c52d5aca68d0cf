/*
File    : lpp/cmd/lpp/cmd/root.go
Package : cmd

Package cmd wires LPP's CLI surface with cobra, grounded on
CWBudde-go-dws's cmd/dwscript/cmd package layout: a root command that
drops into the REPL with no arguments, plus a `run` subcommand for
file execution (spec.md §6's CLI surface).
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lpp-lang/lpp/repl"
)

const (
	version = "0.1.0"
	author  = "lpp-lang"
	license = "MIT"
	prompt  = "LPP >> "
	banner  = `
 _      _____  _____
| |    |  __ \|  __ \
| |    | |__) | |__) |
| |    |  ___/|  ___/
| |____| |    | |
|______|_|    |_|
`
	separator = "----------------------------------------------------------------"
)

var rootCmd = &cobra.Command{
	Use:     "lpp",
	Short:   "LPP is a tree-walking interpreter for a Spanish-keyword toy language",
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := repl.NewRepl(banner, version, author, separator, license, prompt)
		r.Start(os.Stdin, os.Stdout)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
