// Package glossary interprets cDMN identifiers using the symbol
// declarations of a glossary.
package glossary

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"

	"gopkg.in/yaml.v2"

	"github.com/snapcore/go-cdmn/idply"
)

var (
	ErrDuplicateSymbol = errors.New("symbol declared twice")
	ErrEmptySymbol     = errors.New("empty symbol name")
)

// Glossary holds the declarations of a decision model. A Glossary is
// read-only once loaded and safe for concurrent use.
type Glossary struct {
	// Types maps a type name to its elements. Elements may be shared by
	// several types.
	Types map[string][]string `yaml:"types"`
	// Functions and Constants map a symbol to the name of its type.
	Functions  map[string]string `yaml:"functions"`
	Constants  map[string]string `yaml:"constants"`
	Predicates []string          `yaml:"predicates"`

	symbols  map[string]idply.Interpretation
	elements map[string][]string
}

// Load reads a YAML glossary.
func Load(r io.Reader) (*Glossary, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var g Glossary
	if err := yaml.UnmarshalStrict(data, &g); err != nil {
		return nil, fmt.Errorf("cannot decode glossary: %v", err)
	}
	if err := g.index(); err != nil {
		return nil, err
	}
	return &g, nil
}

// LoadFile reads a YAML glossary from filename.
func LoadFile(filename string) (*Glossary, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return g, nil
}

func (g *Glossary) declare(name string, interp idply.Interpretation) error {
	if name == "" {
		return ErrEmptySymbol
	}
	if _, ok := g.symbols[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSymbol, name)
	}
	g.symbols[name] = interp
	return nil
}

func (g *Glossary) index() error {
	g.symbols = make(map[string]idply.Interpretation)
	g.elements = make(map[string][]string)

	for typ := range g.Types {
		if err := g.declare(typ, idply.Value(typ)); err != nil {
			return err
		}
	}
	for name, typ := range g.Functions {
		if err := g.declare(name, idply.TypedValue{Text: name, Type: typ}); err != nil {
			return err
		}
	}
	for name, typ := range g.Constants {
		if err := g.declare(name, idply.TypedValue{Text: name, Type: typ}); err != nil {
			return err
		}
	}
	for _, name := range g.Predicates {
		if err := g.declare(name, idply.PredicateValue(name)); err != nil {
			return err
		}
	}

	for typ, elems := range g.Types {
		for _, elem := range elems {
			if elem == "" {
				return fmt.Errorf("%w in type %s", ErrEmptySymbol, typ)
			}
			if _, ok := g.symbols[elem]; ok {
				return fmt.Errorf("%w: %s", ErrDuplicateSymbol, elem)
			}
			g.elements[elem] = append(g.elements[elem], typ)
		}
	}
	for _, types := range g.elements {
		sort.Strings(types)
	}
	return nil
}

// Interpret implements idply.Resolver. Declared symbols take precedence
// over the variables of the cell. An element shared by several types is
// interpreted in the expected type when it is one of them, and in the
// first type by name otherwise.
func (g *Glossary) Interpret(name string, vars idply.Variables, expected idply.ExpectedType) (idply.Interpretation, error) {
	if interp, ok := g.symbols[name]; ok {
		return interp, nil
	}
	if types, ok := g.elements[name]; ok {
		typ := types[0]
		for _, t := range types {
			if t == expected.Name() {
				typ = t
				break
			}
		}
		return idply.TypedValue{Text: name, Type: typ}, nil
	}
	if vars.Contains(name) {
		return idply.Value(name), nil
	}
	return nil, fmt.Errorf("%w: %s", idply.ErrUnknownSymbol, name)
}
