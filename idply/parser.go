package idply

// Operator precedence, lowest first. Unary minus and # bind tighter than
// any binary operator. "%" and abs have no level: they take the whole
// remainder of the expression as their right operand, and "%" takes only
// the operand immediately before it as its left operand.
const (
	precAdditive = 1 + iota
	precMultiplicative
)

var closers = map[Kind]Kind{
	LPAREN:        RPAREN,
	LQUOTE:        RQUOTE,
	STRAIGHTQUOTE: STRAIGHTQUOTE,
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	return p.peekN(0)
}

func (p *parser) peekN(n int) Token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) next() Token {
	tok := p.peek()
	if p.pos < len(p.toks)-1 {
		p.pos += 1
	}
	return tok
}

func (p *parser) expect(k Kind) (Token, error) {
	tok := p.next()
	if tok.Kind != k {
		return tok, syntaxError(tok, "expected %s, got %s", k, tok)
	}
	return tok, nil
}

func (p *parser) end() error {
	if tok := p.peek(); tok.Kind != EOF {
		return syntaxError(tok, "unexpected %s", tok)
	}
	return nil
}

// try runs alt and rewinds the token stream if it fails.
func (p *parser) try(alt func() (Statement, error)) (Statement, bool) {
	pos := p.pos
	stmt, err := alt()
	if err != nil {
		p.pos = pos
		return nil, false
	}
	return stmt, true
}

func (p *parser) statement() (Statement, error) {
	subject, err := p.expr(precAdditive)
	if err != nil {
		return nil, err
	}
	op := p.next()
	switch op.Kind {
	case EQUALS:
		return p.equality(subject)
	case COMPARE:
		value, err := p.expr(precAdditive)
		if err != nil {
			return nil, err
		}
		if err := p.end(); err != nil {
			return nil, err
		}
		return compareStmt{subject: subject, op: op.Text, value: value}, nil
	}
	return nil, syntaxError(op, "expected = or a comparison, got %s", op)
}

func (p *parser) equality(subject Expr) (Statement, error) {
	switch tok := p.peek(); tok.Kind {
	case EOF:
		return dontCareStmt{subject}, nil
	case YES, NO:
		p.next()
		if err := p.end(); err != nil {
			return nil, err
		}
		return predicateStmt{subject: subject, negated: tok.Kind == NO}, nil
	case MINUS:
		if p.peekN(1).Kind == EOF {
			p.next()
			return dontCareStmt{subject}, nil
		}
	case NOT:
		p.next()
		return p.negation(subject)
	case LBRACK, RBRACK:
		return p.interval(subject, false)
	case LPAREN:
		if stmt, ok := p.try(func() (Statement, error) { return p.interval(subject, false) }); ok {
			return stmt, nil
		}
	}

	value, err := p.expr(precAdditive)
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != COMMA {
		if err := p.end(); err != nil {
			return nil, err
		}
		return compareStmt{subject: subject, op: "=", value: value}, nil
	}
	items, err := p.list(value)
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return listStmt{subject: subject, items: items}, nil
}

// negation parses the remainder of a cell after "not".
func (p *parser) negation(subject Expr) (Statement, error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	switch p.peek().Kind {
	case LBRACK, RBRACK:
		return p.interval(subject, true)
	case LPAREN:
		if stmt, ok := p.try(func() (Statement, error) { return p.interval(subject, true) }); ok {
			return stmt, nil
		}
	}

	value, err := p.expr(precAdditive)
	if err != nil {
		return nil, err
	}
	var stmt Statement = compareStmt{subject: subject, op: "~=", value: value}
	if p.peek().Kind == COMMA {
		items, err := p.list(value)
		if err != nil {
			return nil, err
		}
		stmt = listStmt{subject: subject, items: items, negated: true}
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// list parses the remaining ", expr" items following first.
func (p *parser) list(first Expr) ([]Expr, error) {
	items := []Expr{first}
	for p.peek().Kind == COMMA {
		p.next()
		item, err := p.expr(precAdditive)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func isLowerBound(k Kind) bool {
	return k == LPAREN || k == LBRACK || k == RBRACK
}

func isUpperBound(k Kind) bool {
	return k == RPAREN || k == RBRACK || k == LBRACK
}

// interval parses "lbound expr sep expr rbound". The separator is ".." or
// "," for a plain range and "," only inside not(...).
func (p *parser) interval(subject Expr, negated bool) (Statement, error) {
	lower := p.next()
	if !isLowerBound(lower.Kind) {
		return nil, syntaxError(lower, "expected range bound, got %s", lower)
	}
	low, err := p.expr(precAdditive)
	if err != nil {
		return nil, err
	}
	sep := p.next()
	if sep.Kind != COMMA && (negated || sep.Kind != UNTIL) {
		return nil, syntaxError(sep, "expected range separator, got %s", sep)
	}
	high, err := p.expr(precAdditive)
	if err != nil {
		return nil, err
	}
	upper := p.next()
	if !isUpperBound(upper.Kind) {
		return nil, syntaxError(upper, "expected range bound, got %s", upper)
	}
	if negated {
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return rangeStmt{
		subject: subject,
		lower:   lower.Kind,
		low:     low,
		high:    high,
		upper:   upper.Kind,
		negated: negated,
	}, nil
}

// binaryOp returns the operator at the current position, its precedence
// and the number of tokens it spans.
func (p *parser) binaryOp() (op string, prec, width int) {
	switch tok := p.peek(); tok.Kind {
	case PLUS:
		return "+", precAdditive, 1
	case MINUS:
		return "-", precAdditive, 1
	case TIMES:
		return "*", precMultiplicative, 1
	case DIVIDE:
		if p.peekN(1).Kind == DIVIDE {
			return "//", precMultiplicative, 2
		}
		return "/", precMultiplicative, 1
	}
	return "", 0, 0
}

// expr parses a binary expression whose operators bind at least as tight
// as minPrec. Binary operators are left associative.
func (p *parser) expr(minPrec int) (Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op, prec, width := p.binaryOp()
		if prec == 0 || prec < minPrec {
			return left, nil
		}
		p.pos += width
		right, err := p.expr(prec + 1)
		if err != nil {
			return nil, err
		}
		left = binaryExpr{op: op, left: left, right: right}
	}
}

func (p *parser) unary() (Expr, error) {
	var wrap func(Expr) Expr
	switch p.peek().Kind {
	case MINUS:
		wrap = func(e Expr) Expr { return negExpr{e} }
	case HASHTAG:
		wrap = func(e Expr) Expr { return countExpr{e} }
	case ABS:
		p.next()
		sub, err := p.expr(precAdditive)
		if err != nil {
			return nil, err
		}
		return absExpr{sub}, nil
	default:
		return p.operand()
	}
	p.next()
	sub, err := p.unary()
	if err != nil {
		return nil, err
	}
	return wrap(sub), nil
}

// operand parses a primary and a "%" following it.
func (p *parser) operand() (Expr, error) {
	left, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != PERCENT {
		return left, nil
	}
	p.next()
	right, err := p.expr(precAdditive)
	if err != nil {
		return nil, err
	}
	return binaryExpr{op: "%", left: left, right: right}, nil
}

func (p *parser) primary() (Expr, error) {
	tok := p.next()
	switch tok.Kind {
	case NUMBER:
		if p.peek().Kind == DOT && p.peekN(1).Kind == NUMBER {
			p.next()
			frac := p.next()
			return decimalExpr{whole: tok.Value, frac: frac.Text}, nil
		}
		return numberExpr{tok.Value}, nil
	case ID:
		return identExpr{tok}, nil
	case LPAREN, LQUOTE, STRAIGHTQUOTE:
		inner, err := p.expr(precAdditive)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(closers[tok.Kind]); err != nil {
			return nil, err
		}
		if tok.Kind == LPAREN {
			return parenExpr{inner}, nil
		}
		return quoteExpr{inner}, nil
	}
	return nil, syntaxError(tok, "unexpected %s", tok)
}

// Compile parses a cell, the column header followed by the normalized
// value, into a Statement. Illegal characters are skipped.
func Compile(input string) (Statement, error) {
	toks, _ := Tokenize(input)
	p := parser{toks: toks}
	return p.statement()
}
