package idply

import "fmt"

// Placeholder is an identifier that never decides the expected type of a
// cell.
const Placeholder = "__PLACEHOLDER__"

// Variables lists the identifiers known to the current cell, typically the
// quantified variables of a decision table.
type Variables []string

// Contains reports whether name is one of the variables.
func (v Variables) Contains(name string) bool {
	for _, s := range v {
		if s == name {
			return true
		}
	}
	return false
}

// Interpretation is the resolved value of an identifier. It is one of
// Value, TypedValue or PredicateValue.
type Interpretation interface {
	fmt.Stringer
	interpretation()
}

// Value is an interpretation without a declared type.
type Value string

func (v Value) String() string { return string(v) }
func (Value) interpretation()  {}

// TypedValue is an interpretation of a symbol with a declared type.
type TypedValue struct {
	Text string
	Type string
}

func (v TypedValue) String() string { return v.Text }
func (TypedValue) interpretation()  {}

// PredicateValue is a predicate-valued interpretation. It is always
// rendered bare.
type PredicateValue string

func (v PredicateValue) String() string { return string(v) }
func (PredicateValue) interpretation()  {}

// Resolver interprets identifiers. It returns an error wrapping
// ErrUnknownSymbol when name is neither a declared symbol nor one of vars.
type Resolver interface {
	Interpret(name string, vars Variables, expected ExpectedType) (Interpretation, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string, vars Variables, expected ExpectedType) (Interpretation, error)

func (f ResolverFunc) Interpret(name string, vars Variables, expected ExpectedType) (Interpretation, error) {
	return f(name, vars, expected)
}

type expectation int

const (
	notYetKnown expectation = iota
	knownType
	knownUntyped
)

// ExpectedType is the type latched by the first identifier of a cell.
// The zero value means no identifier has been interpreted yet.
type ExpectedType struct {
	state expectation
	name  string
}

// Known reports whether the expected type has been decided, possibly as
// untyped.
func (t ExpectedType) Known() bool {
	return t.state != notYetKnown
}

// Name returns the latched type name, or "" when the type is not known or
// the first identifier had no type.
func (t ExpectedType) Name() string {
	return t.name
}

func (t ExpectedType) String() string {
	switch t.state {
	case knownType:
		return t.name
	case knownUntyped:
		return "<untyped>"
	}
	return "<unknown>"
}

func latch(interp Interpretation) ExpectedType {
	if tv, ok := interp.(TypedValue); ok && tv.Type != "" {
		return ExpectedType{state: knownType, name: tv.Type}
	}
	return ExpectedType{state: knownUntyped}
}
