package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/jessevdk/go-flags"
	. "gopkg.in/check.v1"
)

func Test(t *testing.T) {
	TestingT(t)
}

var _ = Suite(&mainSuite{})

type mainSuite struct {
	glossary string
}

const glossaryData = `
types:
  Color: [red, green]
functions:
  Score: int
predicates: [Flag]
`

func (s *mainSuite) SetUpTest(c *C) {
	s.glossary = filepath.Join(c.MkDir(), "glossary.yaml")
	c.Assert(ioutil.WriteFile(s.glossary, []byte(glossaryData), 0644), IsNil)
}

func (s *mainSuite) run(c *C, args ...string) (stdout, stderr string, err error) {
	var opts options
	rest, err := flags.ParseArgs(&opts, append([]string{"cdmn-translate"}, args...))
	c.Assert(err, IsNil)
	var out, errOut bytes.Buffer
	err = translate(&opts, rest[1:], &out, &errOut)
	return out.String(), errOut.String(), err
}

func (s *mainSuite) TestTranslate(c *C) {
	stdout, stderr, err := s.run(c, "-g", s.glossary, "Score:>= 10", "Flag:yes", "Color:red, green", "Score:-", "Score:")
	c.Assert(err, IsNil)
	c.Check(stdout, Equals, "Score[:int_t] >= 10\nFlag\n(Color = red | Color = green)\n\n\n")
	c.Check(stderr, Equals, "")
}

func (s *mainSuite) TestTranslateZ3WithVars(c *C) {
	stdout, _, err := s.run(c, "--dialect=idp-z3", "-g", s.glossary, "-V", "p", "Score:p + 1")
	c.Assert(err, IsNil)
	c.Check(stdout, Equals, "Score = p + 1\n")
}

func (s *mainSuite) TestTranslateFailures(c *C) {
	stdout, stderr, err := s.run(c, "-r", "-g", s.glossary, "Score:1 +", "Color:blue", "Score:1")
	c.Check(err, Equals, ErrFailedCells)
	c.Check(stdout, Equals, "\n\nScore[:int_t] = 1\n")
	c.Check(stderr, Equals, "Cannot translate 2 cells:\ncolumn \"Score\":\n\t\"1 +\"\ncolumn \"Color\":\n\t\"blue\"\n")
}

func (s *mainSuite) TestBadArguments(c *C) {
	_, _, err := s.run(c, "-g", s.glossary, "Score 5")
	c.Check(err, ErrorMatches, `cell "Score 5" is not of the form HEADER:VALUE`)

	_, _, err = s.run(c, "-g", filepath.Join(c.MkDir(), "missing.yaml"), "Score:5")
	c.Check(err, ErrorMatches, "cannot load glossary: .*")
}

func (s *mainSuite) TestOptions(c *C) {
	var opts options
	_, err := flags.ParseArgs(&opts, []string{"cdmn-translate", "Score:5"})
	c.Check(err, ErrorMatches, ".*glossary.*")

	_, err = flags.ParseArgs(&opts, []string{"cdmn-translate", "-g", s.glossary, "-d", "z3"})
	c.Check(err, ErrorMatches, ".*z3.*")

	opts = options{}
	_, err = flags.ParseArgs(&opts, []string{"cdmn-translate", "-g", s.glossary})
	c.Assert(err, IsNil)
	c.Check(opts.Dialect, Equals, "idp")
}

func (s *mainSuite) TestSplitCell(c *C) {
	header, value, err := splitCell("Age:[18, 65)")
	c.Assert(err, IsNil)
	c.Check(header, Equals, "Age")
	c.Check(value, Equals, "[18, 65)")
}
