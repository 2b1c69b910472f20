package glossary

import (
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	. "gopkg.in/check.v1"

	"github.com/snapcore/go-cdmn/idply"
)

func Test(t *testing.T) {
	TestingT(t)
}

var _ = Suite(glossarySuite{})

type glossarySuite struct{}

const sample = `
types:
  Color: [red, green, blue]
  Paint: [red, white]
  Person: []
functions:
  Score: int
  Age: int
constants:
  Threshold: int
predicates:
  - Flag
`

func mustLoad(c *C, doc string) *Glossary {
	g, err := Load(strings.NewReader(doc))
	c.Assert(err, IsNil)
	return g
}

func (glossarySuite) TestInterpret(c *C) {
	g := mustLoad(c, sample)
	for _, test := range []struct {
		name     string
		expected idply.Interpretation
	}{
		{"Score", idply.TypedValue{Text: "Score", Type: "int"}},
		{"Threshold", idply.TypedValue{Text: "Threshold", Type: "int"}},
		{"Flag", idply.PredicateValue("Flag")},
		{"Color", idply.Value("Color")},
		{"Person", idply.Value("Person")},
		{"green", idply.TypedValue{Text: "green", Type: "Color"}},
		{"white", idply.TypedValue{Text: "white", Type: "Paint"}},
		{"red", idply.TypedValue{Text: "red", Type: "Color"}},
		{"p", idply.Value("p")},
	} {
		comment := Commentf("name: %s", test.name)
		interp, err := g.Interpret(test.name, idply.Variables{"p"}, idply.ExpectedType{})
		if !c.Check(err, IsNil, comment) {
			continue
		}
		c.Check(interp, DeepEquals, test.expected, comment)
	}
}

func (glossarySuite) TestInterpretUnknown(c *C) {
	g := mustLoad(c, sample)
	_, err := g.Interpret("q", idply.Variables{"p"}, idply.ExpectedType{})
	c.Check(errors.Is(err, idply.ErrUnknownSymbol), Equals, true)
	c.Check(err, ErrorMatches, "unknown symbol: q")
}

func (glossarySuite) TestSharedElementFollowsExpectedType(c *C) {
	g := mustLoad(c, sample)
	p := idply.New(g, idply.IDP)

	// The first identifier decides the type red is read in.
	s, err := p.Parse("Paint= red", nil)
	c.Assert(err, IsNil)
	c.Check(s, Equals, "Paint = red")

	var seen idply.Interpretation
	spy := idply.ResolverFunc(func(name string, vars idply.Variables, expected idply.ExpectedType) (idply.Interpretation, error) {
		interp, err := g.Interpret(name, vars, expected)
		if name == "red" {
			seen = interp
		}
		return interp, err
	})
	p = idply.New(spy, idply.IDP)
	_, err = p.Parse("white= red", nil)
	c.Assert(err, IsNil)
	c.Check(seen, DeepEquals, idply.TypedValue{Text: "red", Type: "Paint"})
}

func (glossarySuite) TestLoadErrors(c *C) {
	for _, test := range []struct {
		doc, err string
	}{
		{"functions: {Score: int}\npredicates: [Score]\n", "symbol declared twice: Score"},
		{"types: {Color: [Flag]}\npredicates: [Flag]\n", "symbol declared twice: Flag"},
		{"types: {Color: ['']}\n", "empty symbol name in type Color"},
		{"relations: [Flag]\n", "(?s)cannot decode glossary: .*"},
		{"types: [Color]\n", "(?s)cannot decode glossary: .*"},
	} {
		_, err := Load(strings.NewReader(test.doc))
		c.Check(err, ErrorMatches, test.err, Commentf("doc: %q", test.doc))
	}
}

func (glossarySuite) TestLoadFile(c *C) {
	dir := c.MkDir()
	filename := filepath.Join(dir, "glossary.yaml")
	c.Assert(ioutil.WriteFile(filename, []byte(sample), 0644), IsNil)

	g, err := LoadFile(filename)
	c.Assert(err, IsNil)
	c.Check(g.Functions, DeepEquals, map[string]string{"Score": "int", "Age": "int"})

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	c.Check(err, NotNil)
}
