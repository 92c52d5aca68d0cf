/*
File    : lpp/eval/eval_snapshot_test.go
Package : eval

Golden tests pinning the Inspect() string of evaluating a handful of
representative programs, the evaluator-side counterpart to the
parser's string-form snapshots.
*/
package eval

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestEvalInspect_Snapshot(t *testing.T) {
	programs := []string{
		"50 / 2 * 2 + 10",
		`variable suma = procedimiento(x, y) { regresa x + y; }; suma(3, 4);`,
		`si (5 < 10) { "menor" } si_no { "mayor" }`,
		`longitud("Hola mundo")`,
	}

	for _, src := range programs {
		result := testEval(t, src)
		snaps.MatchSnapshot(t, result.Inspect())
	}
}
