package idply

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

type lexer struct {
	data string
	pos  int
	line int

	errs []*LexError
}

func newLexer(input string) *lexer {
	return &lexer{data: norm.NFC.String(input), line: 1}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentRune(r rune) bool {
	return r == '_' || r == ' ' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (l *lexer) peekRune() (rune, int) {
	return utf8.DecodeRuneInString(l.data[l.pos:])
}

// Lex returns the next token, or a token of kind EOF at the end of the
// input.
func (l *lexer) Lex() Token {
	for {
		if l.pos >= len(l.data) {
			return Token{Kind: EOF, Pos: l.pos, Line: l.line}
		}
		switch l.data[l.pos] {
		case ' ', '\t':
			l.pos += 1
			continue
		case '\n':
			l.line += 1
			l.pos += 1
			continue
		}

		pos := l.pos
		r, size := l.peekRune()
		switch {
		case isDigit(l.data[pos]):
			for l.pos < len(l.data) && isDigit(l.data[l.pos]) {
				l.pos += 1
			}
			text := l.data[pos:l.pos]
			num, err := strconv.Atoi(text)
			if err != nil {
				tracer().Infof("warning: number %s cannot be converted, using 0: %v", text, err)
				num = 0
			}
			return Token{Kind: NUMBER, Text: text, Value: num, Pos: pos, Line: l.line}
		case isIdentStart(r):
			l.pos += size
			for l.pos < len(l.data) {
				r, size := l.peekRune()
				if !isIdentRune(r) {
					break
				}
				l.pos += size
			}
			text := strings.TrimSpace(l.data[pos:l.pos])
			kind := ID
			if k, ok := reserved[text]; ok {
				kind = k
			}
			return Token{Kind: kind, Text: text, Pos: pos, Line: l.line}
		case r == '.':
			if l.pos+1 < len(l.data) && l.data[l.pos+1] == '.' {
				l.pos += 2
				return Token{Kind: UNTIL, Text: "..", Pos: pos, Line: l.line}
			}
		case r == '<' || r == '>':
			l.pos += 1
			if l.pos < len(l.data) && l.data[l.pos] == '=' {
				l.pos += 1
			}
			return Token{Kind: COMPARE, Text: l.data[pos:l.pos], Pos: pos, Line: l.line}
		}

		if kind, ok := singles[r]; ok {
			l.pos += size
			return Token{Kind: kind, Text: l.data[pos:l.pos], Pos: pos, Line: l.line}
		}

		// Skip exactly one character and carry on.
		err := &LexError{Char: r, Pos: pos, Line: l.line}
		tracer().Infof("%v", err)
		l.errs = append(l.errs, err)
		l.pos += size
	}
}

// Tokenize splits input into tokens. The returned slice always ends with
// an EOF token. Illegal characters are skipped and reported in errs.
func Tokenize(input string) (toks []Token, errs []*LexError) {
	l := newLexer(input)
	for {
		tok := l.Lex()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, l.errs
		}
	}
}
