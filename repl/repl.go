/*
File    : lpp/repl/repl.go
Package : repl

Package repl implements the LPP Read-Eval-Print Loop: users enter
source line by line, each line is lexed, parsed, and evaluated against
one Environment kept alive for the whole session, so bindings from one
line are visible on the next (spec.md §6's CLI surface). It reuses the
teacher's readline/fatih-color REPL shell, adapted to a fresh
lexer+parser+evaluator pipeline per line instead of the teacher's
single long-lived parser/evaluator pair.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/lpp-lang/lpp/eval"
	"github.com/lpp-lang/lpp/lexer"
	"github.com/lpp-lang/lpp/object"
	"github.com/lpp-lang/lpp/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl constructs a Repl ready to Start.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Bienvenido a LPP!")
	cyanColor.Fprintf(writer, "%s\n", "Escribe tu codigo y presiona enter")
	cyanColor.Fprintf(writer, "%s\n", "Escribe '.exit' para salir")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop: one persistent Environment across every
// line entered, per spec.md §6 — no re-lexing of prior input, unlike
// the original Python REPL (see SPEC_FULL.md §5).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Hasta luego!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Hasta luego!\n"))
			break
		}

		rl.SaveHistory(line)
		r.execute(writer, line, env)
	}
}

// execute lexes, parses, and evaluates a single line within env,
// printing parser errors or the result's Inspect() string, per
// spec.md §6's REPL contract.
func (r *Repl) execute(writer io.Writer, line string, env *object.Environment) {
	p := parser.New(lexer.New(line))
	program := p.ParseProgram()

	if len(p.Errors) > 0 {
		redColor.Fprintf(writer, "--- Error ---\n")
		for _, msg := range p.Errors {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	result := eval.Eval(program, env)
	if result == nil || result == object.NULL {
		return
	}

	if result.Kind() == object.ErrorKind {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}

	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
