package idply

import "fmt"

// Kind classifies a token.
type Kind int

const (
	EOF Kind = iota
	NUMBER
	COMPARE
	PLUS
	MINUS
	TIMES
	DIVIDE
	EQUALS
	COMMA
	LPAREN
	RPAREN
	LBRACK
	RBRACK
	UNTIL
	ID
	PERCENT
	STRAIGHTQUOTE
	LQUOTE
	RQUOTE
	LACC
	RACC
	DOT
	HASHTAG
	NOT
	YES
	NO
	ABS
	MIN
	MAX
)

var kindNames = [...]string{
	EOF:           "EOF",
	NUMBER:        "NUMBER",
	COMPARE:       "COMPARE",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	TIMES:         "TIMES",
	DIVIDE:        "DIVIDE",
	EQUALS:        "EQUALS",
	COMMA:         "COMMA",
	LPAREN:        "LPAREN",
	RPAREN:        "RPAREN",
	LBRACK:        "LBRACK",
	RBRACK:        "RBRACK",
	UNTIL:         "UNTIL",
	ID:            "ID",
	PERCENT:       "PERCENT",
	STRAIGHTQUOTE: "STRAIGHTQUOTE",
	LQUOTE:        "LQUOTE",
	RQUOTE:        "RQUOTE",
	LACC:          "LACC",
	RACC:          "RACC",
	DOT:           "DOT",
	HASHTAG:       "HASHTAG",
	NOT:           "NOT",
	YES:           "YES",
	NO:            "NO",
	ABS:           "ABS",
	MIN:           "MIN",
	MAX:           "MAX",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// reserved maps identifier text to its reserved-word kind. Both the
// capitalised and the lower case spelling are accepted.
var reserved = map[string]Kind{
	"Not": NOT, "not": NOT,
	"yes": YES, "Yes": YES,
	"No": NO, "no": NO,
	"abs": ABS, "Abs": ABS,
	"min": MIN, "Min": MIN,
	"max": MAX, "Max": MAX,
}

var singles = map[rune]Kind{
	'+':      PLUS,
	'-':      MINUS,
	'\u2212': MINUS,
	'*':      TIMES,
	'/':      DIVIDE,
	'(':      LPAREN,
	')':      RPAREN,
	'[':      LBRACK,
	']':      RBRACK,
	',':      COMMA,
	'=':      EQUALS,
	'%':      PERCENT,
	'"':      STRAIGHTQUOTE,
	'\u201c': LQUOTE,
	'\u201d': RQUOTE,
	'{':      LACC,
	'}':      RACC,
	'.':      DOT,
	'#':      HASHTAG,
}

// Token is a lexical unit of a cell.
type Token struct {
	Kind Kind
	// Text is the raw lexeme. Identifiers are trimmed of surrounding
	// whitespace.
	Text string
	// Value holds the integer value of a NUMBER token.
	Value int
	// Pos is the byte offset of the lexeme in the lexed input.
	Pos  int
	Line int
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}
