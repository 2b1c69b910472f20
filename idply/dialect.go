package idply

import "fmt"

// Dialect selects the surface syntax of the generated expressions.
type Dialect int

const (
	// IDP is the classic IDP syntax. Identifiers are annotated with the
	// expected type.
	IDP Dialect = iota
	// IDPZ3 is the IDP-Z3 syntax. Identifiers are rendered bare.
	IDPZ3
)

// ParseDialect maps a target language name to a Dialect. "idp" selects
// IDP, anything else selects IDPZ3.
func ParseDialect(lang string) Dialect {
	if lang == "idp" {
		return IDP
	}
	return IDPZ3
}

func (d Dialect) String() string {
	if d == IDP {
		return "idp"
	}
	return "idp-z3"
}

func (d Dialect) domainSize(typ string) string {
	if d == IDP {
		return fmt.Sprintf("#{ typevar[%s_t] : true}", typ)
	}
	return fmt.Sprintf("#{ typevar ∈ %s_t : true}", typ)
}

func (d Dialect) typed(text, typ string) string {
	return fmt.Sprintf("%s[:%s_t]", text, typ)
}
