package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/snapcore/go-cdmn"
	"github.com/snapcore/go-cdmn/idply"
	"github.com/snapcore/go-cdmn/internal/glossary"
)

// ErrFailedCells is returned when at least one cell could not be translated.
var ErrFailedCells = errors.New("some cells could not be translated")

type options struct {
	Glossary string `short:"g" long:"glossary" value-name:"FILE" required:"true" description:"read symbol declarations from FILE"`

	Dialect string `short:"d" long:"dialect" default:"idp" choice:"idp" choice:"idp-z3" description:"generate expressions for DIALECT"`

	Vars []string `short:"V" long:"var" value-name:"NAME" description:"add NAME to the variables known to every cell"`

	Report bool `short:"r" long:"report" description:"print the untranslatable cells to standard error"`
}

// splitCell splits a HEADER:VALUE argument.
func splitCell(arg string) (header, value string, err error) {
	i := strings.IndexByte(arg, ':')
	if i < 0 {
		return "", "", fmt.Errorf("cell %q is not of the form HEADER:VALUE", arg)
	}
	return arg[:i], arg[i+1:], nil
}

// translate writes one line per cell to stdout. It returns
// ErrFailedCells if a cell could not be translated.
func translate(opts *options, cells []string, stdout, stderr io.Writer) error {
	g, err := glossary.LoadFile(opts.Glossary)
	if err != nil {
		return fmt.Errorf("cannot load glossary: %v", err)
	}
	t := cdmn.NewTranslator(g, idply.ParseDialect(opts.Dialect))
	vars := idply.Variables(opts.Vars)
	for _, arg := range cells {
		header, value, err := splitCell(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, t.ParseVal(header, value, vars))
	}

	if opts.Report {
		if err := t.WriteReport(stderr); err != nil {
			return fmt.Errorf("cannot write report: %v", err)
		}
	}
	if t.Err() != nil {
		return ErrFailedCells
	}
	return nil
}

func main() {
	// parse args
	var opts options
	args, err := flags.ParseArgs(&opts, os.Args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	err = translate(&opts, args[1:], os.Stdout, os.Stderr)
	if err == ErrFailedCells {
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("%s", err)
	}
}
