// Package idply translates cDMN decision table cells into IDP and IDP-Z3
// expressions.
//
// A cell is the column header followed by the cell value, for example
// "Age= [18, 65)". Compile parses a cell into a Statement; a Parser renders
// it, interpreting identifiers through a Resolver.
package idply

// Parser renders cells in one dialect. A Parser carries per-cell state
// and must not be used by several goroutines at once.
type Parser struct {
	resolver Resolver
	dialect  Dialect

	vars     Variables
	expected ExpectedType
}

// New returns a Parser interpreting identifiers with resolver. A nil
// resolver interprets every identifier as an untyped Value of its own
// text.
func New(resolver Resolver, dialect Dialect) *Parser {
	return &Parser{resolver: resolver, dialect: dialect}
}

// Dialect returns the dialect the parser renders.
func (p *Parser) Dialect() Dialect {
	return p.dialect
}

// Parse translates one cell. vars are the identifiers known to the cell.
// A "don't care" cell yields the empty string.
func (p *Parser) Parse(input string, vars Variables) (string, error) {
	p.reset(vars)
	defer p.reset(nil)

	stmt, err := Compile(input)
	if err != nil {
		tracer().Debugf("cannot compile %q: %v", input, err)
		return "", err
	}
	return p.Render(stmt)
}

// Render renders a compiled statement with the parser's current
// variables.
func (p *Parser) Render(stmt Statement) (string, error) {
	return stmt.render(p)
}

func (p *Parser) reset(vars Variables) {
	p.vars = vars
	p.expected = ExpectedType{}
}

func (p *Parser) interpret(name string) (Interpretation, error) {
	if p.resolver == nil {
		return Value(name), nil
	}
	return p.resolver.Interpret(name, p.vars, p.expected)
}

// ident interprets an identifier token. The first identifier other than
// Placeholder decides the expected type of the cell.
func (p *Parser) ident(tok Token) (string, error) {
	interp, err := p.interpret(tok.Text)
	if err != nil {
		return "", &ParseError{Text: tok.Text, Pos: tok.Pos, Msg: "cannot interpret identifier", Err: err}
	}
	if tok.Text != Placeholder && !p.expected.Known() {
		p.expected = latch(interp)
		tracer().Debugf("expected type of cell is %s", p.expected)
	}

	if p.dialect == IDPZ3 {
		return interp.String(), nil
	}
	if _, ok := interp.(PredicateValue); ok {
		return interp.String(), nil
	}
	if p.expected.state == knownType {
		return p.dialect.typed(interp.String(), p.expected.name), nil
	}
	return interp.String(), nil
}
