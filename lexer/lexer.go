/*
File    : lpp/lexer/lexer.go
Package : lexer

Package lexer turns LPP source text into a stream of token.Token values,
pulled on demand via NextToken. It is the first stage of the pipeline
described in spec.md §2: source string -> Lexer -> Parser -> Program.
*/
package lexer

import (
	"github.com/lpp-lang/lpp/token"
)

// Lexer performs lexical analysis of LPP source code. It scans the
// source rune by rune (not byte by byte) so that multi-byte UTF-8
// characters — including the accented identifier letters spec.md §4.1
// requires — are recognized as single units.
//
// Fields:
//   - source: the entire program text, decoded once into runes
//   - position: index of Current in source
//   - readPosition: index of the next rune to read
//   - Current: the rune under the cursor, or 0 at end of input
type Lexer struct {
	source       []rune
	position     int
	readPosition int
	Current      rune
}

// New creates a Lexer positioned at the first rune of source.
func New(source string) *Lexer {
	lex := &Lexer{source: []rune(source)}
	lex.advance()
	return lex
}

// advance moves the cursor one rune forward, setting Current to 0 once
// the source is exhausted. This mirrors the teacher's Advance/Current
// scheme, generalized from bytes to runes.
func (lex *Lexer) advance() {
	if lex.readPosition >= len(lex.source) {
		lex.Current = 0
	} else {
		lex.Current = lex.source[lex.readPosition]
	}
	lex.position = lex.readPosition
	lex.readPosition++
}

// peek looks at the rune after Current without consuming it.
func (lex *Lexer) peek() rune {
	if lex.readPosition >= len(lex.source) {
		return 0
	}
	return lex.source[lex.readPosition]
}

// skipWhitespace consumes runs of space, tab, newline and carriage
// return, per spec.md §6.
func (lex *Lexer) skipWhitespace() {
	for lex.Current == ' ' || lex.Current == '\t' || lex.Current == '\n' || lex.Current == '\r' {
		lex.advance()
	}
}

// NextToken scans and returns the next token in the source. Beyond the
// end of input it yields token.EOF indefinitely, per spec.md §4.1.
func (lex *Lexer) NextToken() token.Token {
	lex.skipWhitespace()

	var tok token.Token

	switch lex.Current {
	case '=':
		if lex.peek() == '=' {
			lex.advance()
			tok = token.New(token.EQ, "==")
		} else {
			tok = token.New(token.ASSIGN, "=")
		}
	case '!':
		if lex.peek() == '=' {
			lex.advance()
			tok = token.New(token.NOT_EQ, "!=")
		} else {
			tok = token.New(token.BANG, "!")
		}
	case '+':
		tok = token.New(token.PLUS, "+")
	case '-':
		tok = token.New(token.MINUS, "-")
	case '*':
		tok = token.New(token.ASTERISK, "*")
	case '/':
		tok = token.New(token.SLASH, "/")
	case '<':
		tok = token.New(token.LT, "<")
	case '>':
		tok = token.New(token.GT, ">")
	case '(':
		tok = token.New(token.LPAREN, "(")
	case ')':
		tok = token.New(token.RPAREN, ")")
	case '{':
		tok = token.New(token.LBRACE, "{")
	case '}':
		tok = token.New(token.RBRACE, "}")
	case ',':
		tok = token.New(token.COMMA, ",")
	case ';':
		tok = token.New(token.SEMICOLON, ";")
	case '"':
		return lex.readString()
	case 0:
		tok = token.New(token.EOF, "")
	default:
		if isIdentStart(lex.Current) {
			return lex.readIdentifier()
		}
		if isDigit(lex.Current) {
			return lex.readNumber()
		}
		tok = token.New(token.ILLEGAL, string(lex.Current))
	}

	lex.advance()
	return tok
}

// readIdentifier scans an identifier or keyword. Per spec.md §4.1 the
// start character is [A-Za-z_áéíóúÁÉÍÓÚñÑ]; continuation additionally
// allows digits. The lexer never raises on its own: a malformed
// identifier cannot occur here because isIdentStart already gated entry.
func (lex *Lexer) readIdentifier() token.Token {
	start := lex.position
	for isIdentStart(lex.Current) || isDigit(lex.Current) {
		lex.advance()
	}
	literal := string(lex.source[start:lex.position])
	return token.New(token.LookupIdent(literal), literal)
}

// readNumber scans a greedy run of ASCII digits into an INT token.
func (lex *Lexer) readNumber() token.Token {
	start := lex.position
	for isDigit(lex.Current) {
		lex.advance()
	}
	return token.New(token.INT, string(lex.source[start:lex.position]))
}

// readString scans a double-quoted string literal. No escape sequences
// are recognized, per spec.md §6; the literal is everything up to but
// not including the closing quote. An unterminated string reads to EOF
// and returns whatever was collected, consistent with "the lexer never
// raises" (spec.md §4.1). The next token is EOF; no error is recorded
// for the missing closing quote.
func (lex *Lexer) readString() token.Token {
	lex.advance() // consume opening quote
	start := lex.position
	for lex.Current != '"' && lex.Current != 0 {
		lex.advance()
	}
	literal := string(lex.source[start:lex.position])
	if lex.Current == '"' {
		lex.advance() // consume closing quote
	}
	return token.New(token.STRING, literal)
}

// identExtra is the fixed set of accented letters spec.md §4.1 adds to
// the identifier alphabet beyond plain ASCII letters and underscore.
const identExtra = "áéíóúÁÉÍÓÚñÑ"

// isIdentStart reports whether r may start (or continue) an identifier.
// This is a closed, spec-mandated alphabet, not general Unicode letter
// classification — a plain rune check is the right tool here; pulling
// in a Unicode-tables package would both be overkill and accept letters
// the language does not.
func isIdentStart(r rune) bool {
	if r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
		return true
	}
	for _, extra := range identExtra {
		if r == extra {
			return true
		}
	}
	return false
}

// isDigit reports whether r is an ASCII decimal digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
