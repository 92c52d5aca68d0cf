/*
File    : lpp/ast/ast_test.go
Package : ast
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lpp-lang/lpp/token"
)

// TestLetStatement_String mirrors the canonical AST-stringification
// test from the Monkey/LPP family of interpreters: a hand-built tree
// for `variable miVar = otraVar;` must reconstruct to that exact text.
func TestLetStatement_String(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.New(token.LET, "variable"),
				Name: &Identifier{
					Token: token.New(token.IDENT, "miVar"),
					Value: "miVar",
				},
				Value: &Identifier{
					Token: token.New(token.IDENT, "otraVar"),
					Value: "otraVar",
				},
			},
		},
	}

	assert.Equal(t, "variable miVar = otraVar;", program.String())
}

// TestFunctionLiteral_String checks parameter join formatting and body
// delegation.
func TestFunctionLiteral_String(t *testing.T) {
	fn := &FunctionLiteral{
		Token: token.New(token.FUNCTION, "procedimiento"),
		Parameters: []*Identifier{
			{Token: token.New(token.IDENT, "x"), Value: "x"},
			{Token: token.New(token.IDENT, "y"), Value: "y"},
		},
		Body: &BlockStatement{
			Statements: []Statement{
				&ExpressionStatement{
					Expression: &InfixExpression{
						Left:     &Identifier{Value: "x"},
						Operator: "+",
						Right:    &Identifier{Value: "y"},
					},
				},
			},
		},
	}

	assert.Equal(t, "procedimiento(x, y) (x + y)", fn.String())
}
