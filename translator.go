// Translates the cells of cDMN decision tables to IDP and IDP-Z3.

package cdmn

import (
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/snapcore/go-cdmn/idply"
)

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Translator translates the cells of a decision table and keeps a log of
// the cells it could not translate. Use NewTranslator to create an
// instance.
type Translator struct {
	// The mutex serializing cell translation must not be copied, so
	// the state lives in an ancillary struct.
	*translator
}

type translator struct {
	mu     sync.Mutex
	parser *idply.Parser
	errs   *ErrorLog
}

// NewTranslator returns a Translator rendering dialect and interpreting
// identifiers with resolver.
func NewTranslator(resolver idply.Resolver, dialect idply.Dialect) Translator {
	return Translator{&translator{
		parser: idply.New(resolver, dialect),
		errs:   newErrorLog(),
	}}
}

// Dialect returns the dialect the translator renders.
func (t Translator) Dialect() idply.Dialect {
	return t.parser.Dialect()
}

// cell joins a header and a cell value into the input of the parser.
// Values without a leading comparison operator are equalities.
func cell(header, value string) string {
	v := strings.TrimLeft(value, " \t")
	if strings.HasPrefix(v, "<") || strings.HasPrefix(v, ">") || strings.HasPrefix(v, "=") {
		return header + value
	}
	return header + "= " + value
}

// ParseVal translates the cell value of the column header. An empty cell
// or "-" is a "don't care" and yields the empty string. A cell that
// cannot be translated yields the empty string as well and is added to
// the error log; see Errors and Err.
func (t Translator) ParseVal(header, value string, vars idply.Variables) string {
	if v := strings.TrimSpace(value); v == "" || v == "-" {
		return ""
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	out, err := t.parser.Parse(cell(header, value), vars)
	if err != nil {
		tracer().Infof("column %q: cannot translate %q: %v", header, value, err)
		t.errs.add(header, value)
		return ""
	}
	return out
}

// Errors returns a snapshot of the cells that could not be translated so
// far.
func (t Translator) Errors() *ErrorLog {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.errs.clone()
}

// Err returns a *TableError if any cell could not be translated, and nil
// otherwise.
func (t Translator) Err() error {
	return t.Errors().Err()
}

// WriteReport writes a summary of the untranslatable cells to w.
func (t Translator) WriteReport(w io.Writer) error {
	return t.Errors().WriteReport(w)
}
