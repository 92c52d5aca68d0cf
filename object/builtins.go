/*
File    : lpp/object/builtins.go
Package : object

Builtins is the fixed registry of names the evaluator consults when a
name is not found in the current Environment chain, per spec.md §4.5. LPP ships a
single builtin, `longitud`, which reports the length of a string.
*/
package object

import "fmt"

// Builtins maps each builtin's LPP name to its implementation.
var Builtins = map[string]*Builtin{
	"longitud": {Fn: longitud},
}

func longitud(args ...Value) Value {
	if len(args) != 1 {
		return newError("número incorrecto de argumentos para longitud, se recibieron %d, se requieren 1", len(args))
	}

	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len([]rune(arg.Value)))}
	default:
		return newError("argumento para longitud sin soporte, se recibió %s", arg.Kind())
	}
}

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}
