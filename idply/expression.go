package idply

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is a value expression of a cell. Use Compile to build Statement
// trees containing Expr nodes.
type Expr interface {
	render(p *Parser) (string, error)
}

// Statement is the top level of a compiled cell.
type Statement interface {
	render(p *Parser) (string, error)
}

type numberExpr struct {
	value int
}

func (e numberExpr) render(*Parser) (string, error) {
	return strconv.Itoa(e.value), nil
}

type decimalExpr struct {
	whole int
	frac  string
}

func (e decimalExpr) render(*Parser) (string, error) {
	return fmt.Sprintf("%d.%s", e.whole, e.frac), nil
}

type identExpr struct {
	tok Token
}

func (e identExpr) render(p *Parser) (string, error) {
	return p.ident(e.tok)
}

type unaryExpr struct {
	sub Expr
}

type negExpr unaryExpr

func (e negExpr) render(p *Parser) (string, error) {
	s, err := e.sub.render(p)
	if err != nil {
		return "", err
	}
	return "-" + s, nil
}

type absExpr unaryExpr

func (e absExpr) render(p *Parser) (string, error) {
	s, err := e.sub.render(p)
	if err != nil {
		return "", err
	}
	return "abs(" + s + ")", nil
}

type parenExpr unaryExpr

func (e parenExpr) render(p *Parser) (string, error) {
	s, err := e.sub.render(p)
	if err != nil {
		return "", err
	}
	return "(" + s + ")", nil
}

type quoteExpr unaryExpr

func (e quoteExpr) render(p *Parser) (string, error) {
	s, err := e.sub.render(p)
	if err != nil {
		return "", err
	}
	return `"` + s + `"`, nil
}

// countExpr is the domain size of the type named by its operand.
type countExpr unaryExpr

func (e countExpr) render(p *Parser) (string, error) {
	s, err := e.sub.render(p)
	if err != nil {
		return "", err
	}
	typ := s
	if i := strings.IndexAny(s, "[ "); i >= 0 {
		typ = s[:i]
	}
	return p.dialect.domainSize(typ), nil
}

type binaryExpr struct {
	op    string
	left  Expr
	right Expr
}

func (e binaryExpr) render(p *Parser) (string, error) {
	l, err := e.left.render(p)
	if err != nil {
		return "", err
	}
	r, err := e.right.render(p)
	if err != nil {
		return "", err
	}
	switch e.op {
	case "/":
		return l + "/" + r, nil
	case "%":
		return l + "%" + r, nil
	case "//":
		return fmt.Sprintf("(%s - %s%%%s)/%s", l, l, r, r), nil
	}
	return l + " " + e.op + " " + r, nil
}

// predicateStmt is a yes or no cell.
type predicateStmt struct {
	subject Expr
	negated bool
}

func (s predicateStmt) render(p *Parser) (string, error) {
	lhs, err := s.subject.render(p)
	if err != nil {
		return "", err
	}
	if s.negated {
		return "~(" + lhs + ")", nil
	}
	return lhs, nil
}

// dontCareStmt produces no text. The subject is still interpreted so
// unknown headers are reported.
type dontCareStmt struct {
	subject Expr
}

func (s dontCareStmt) render(p *Parser) (string, error) {
	if _, err := s.subject.render(p); err != nil {
		return "", err
	}
	return "", nil
}

type compareStmt struct {
	subject Expr
	op      string
	value   Expr
}

func (s compareStmt) render(p *Parser) (string, error) {
	lhs, err := s.subject.render(p)
	if err != nil {
		return "", err
	}
	rhs, err := s.value.render(p)
	if err != nil {
		return "", err
	}
	return lhs + " " + s.op + " " + rhs, nil
}

type listStmt struct {
	subject Expr
	items   []Expr
	negated bool
}

func (s listStmt) render(p *Parser) (string, error) {
	lhs, err := s.subject.render(p)
	if err != nil {
		return "", err
	}
	clauses := make([]string, 0, len(s.items))
	for _, item := range s.items {
		v, err := item.render(p)
		if err != nil {
			return "", err
		}
		clauses = append(clauses, lhs+" = "+v)
	}
	out := "(" + strings.Join(clauses, " | ") + ")"
	if s.negated {
		return "~" + out, nil
	}
	return out, nil
}

type rangeStmt struct {
	subject Expr
	lower   Kind
	low     Expr
	high    Expr
	upper   Kind
	negated bool
}

// lowerComparator treats ( and ] as exclusive opening bounds.
func lowerComparator(k Kind) string {
	if k == LPAREN || k == RBRACK {
		return "<"
	}
	return "=<"
}

// upperComparator treats ) and [ as exclusive closing bounds.
func upperComparator(k Kind) string {
	if k == RPAREN || k == LBRACK {
		return "<"
	}
	return "=<"
}

func (s rangeStmt) render(p *Parser) (string, error) {
	lhs, err := s.subject.render(p)
	if err != nil {
		return "", err
	}
	lo, err := s.low.render(p)
	if err != nil {
		return "", err
	}
	hi, err := s.high.render(p)
	if err != nil {
		return "", err
	}
	c1, c2 := lowerComparator(s.lower), upperComparator(s.upper)
	if s.negated {
		// Operands of the first comparison are swapped with respect to
		// the positive range.
		return fmt.Sprintf("%s %s %s & %s %s %s", lhs, c1, lo, lo, c2, hi), nil
	}
	return fmt.Sprintf("%s %s %s & %s %s %s", lo, c1, lhs, lhs, c2, hi), nil
}
