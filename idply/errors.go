package idply

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol is returned by a Resolver that cannot interpret an
// identifier.
var ErrUnknownSymbol = errors.New("unknown symbol")

// LexError records an illegal character. Lexing skips the character and
// continues.
type LexError struct {
	Char rune
	Pos  int
	Line int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("illegal character %q at line %d offset %d", e.Char, e.Line, e.Pos)
}

// ParseError reports a cell that cannot be translated. Text holds the
// offending token text; it is empty when the input ended prematurely.
type ParseError struct {
	Text string
	Pos  int
	Msg  string
	// Err is the resolver error when the failure happened while
	// interpreting an identifier.
	Err error
}

func (e *ParseError) Error() string {
	var where string
	if e.Text == "" {
		where = "at end of input"
	} else {
		where = fmt.Sprintf("at %q (offset %d)", e.Text, e.Pos)
	}
	if e.Err != nil {
		return fmt.Sprintf("cannot parse cell %s: %s: %v", where, e.Msg, e.Err)
	}
	return fmt.Sprintf("cannot parse cell %s: %s", where, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func syntaxError(tok Token, format string, args ...interface{}) *ParseError {
	return &ParseError{Text: tok.Text, Pos: tok.Pos, Msg: fmt.Sprintf(format, args...)}
}
