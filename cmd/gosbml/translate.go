package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/gosbml/gosbml/ast"
	"github.com/gosbml/gosbml/formula"
	"github.com/gosbml/gosbml/mathml"
)

const translateUsage = `gosbml translate - Translate between infix formulas and MathML

Usage:
  gosbml translate [EXPR | -]

Input that starts with "<" is read as a MathML <math> element and
printed as an infix formula; anything else is parsed as an infix
formula and printed as MathML. With "-" or no argument, the input is
read from stdin.
`

func (c *cli) cmdTranslate(args []string) int {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() { _, _ = fmt.Fprint(c.stderr, translateUsage) }
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if *help || c.helpFlag {
		_, _ = fmt.Fprint(c.stdout, translateUsage)
		return exitOK
	}

	var input string
	switch {
	case fs.NArg() == 0 || fs.Arg(0) == "-":
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			c.printError("reading stdin: %v", err)
			return exitError
		}
		input = string(data)
	default:
		input = strings.Join(fs.Args(), " ")
	}

	out, err := translate(input)
	if err != nil {
		c.printError("%v", err)
		return exitError
	}
	return c.withOutput(func(w io.Writer) error {
		_, err := fmt.Fprintln(w, strings.TrimRight(out, "\n"))
		return err
	})
}

// translate converts MathML to infix, or infix to MathML.
func translate(input string) (string, error) {
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "<") {
		n, err := mathml.Decode(input)
		if err != nil {
			return "", err
		}
		return formula.Format(n)
	}
	n, err := formula.Parse(input)
	if err != nil {
		return "", err
	}
	if !ast.Canonicalize(n) {
		return "", fmt.Errorf("formula %q has an element of unknown type", input)
	}
	return mathml.Encode(n)
}
