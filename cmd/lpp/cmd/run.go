/*
File    : lpp/cmd/lpp/cmd/run.go
Package : cmd
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lpp-lang/lpp/eval"
	"github.com/lpp-lang/lpp/lexer"
	"github.com/lpp-lang/lpp/object"
	"github.com/lpp-lang/lpp/parser"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an LPP source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runFile reads, lexes, parses, and evaluates filename with a fresh
// Environment, printing the final value's Inspect() if non-null, per
// spec.md §6's file-runner contract.
func runFile(cmd *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("no se pudo leer el archivo %s: %w", filename, err)
	}

	p := parser.New(lexer.New(string(content)))
	program := p.ParseProgram()

	if len(p.Errors) > 0 {
		red := color.New(color.FgRed)
		red.Fprintln(os.Stderr, "--- Error ---")
		for _, msg := range p.Errors {
			red.Fprintln(os.Stderr, msg)
		}
		return fmt.Errorf("%d error(es) de análisis en %s", len(p.Errors), filename)
	}

	env := object.NewEnvironment()
	result := eval.Eval(program, env)

	if result == nil || result == object.NULL {
		return nil
	}

	if result.Kind() == object.ErrorKind {
		fmt.Fprintln(os.Stderr, result.Inspect())
		return fmt.Errorf("ejecución fallida")
	}

	fmt.Println(result.Inspect())
	return nil
}
