package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gosbml/gosbml/ast"
	"github.com/gosbml/gosbml/formula"
)

const evalUsage = `gosbml eval - Evaluate an infix formula

Usage:
  gosbml eval [-D NAME=VALUE]... [--time T] EXPR

Options:
  -D NAME=VALUE  Bind a symbol (repeatable)
  --time T       Value of the simulation time symbol (default: 0)
  -h, --help     Show help

Use "--" before an expression that starts with "-".
`

func (c *cli) cmdEval(args []string) int {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() { _, _ = fmt.Fprint(c.stderr, evalUsage) }
	vars := map[string]float64{}
	fs.Func("D", "bind NAME=VALUE", func(s string) error {
		name, value, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return fmt.Errorf("want NAME=VALUE, got %q", s)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("value of %s: %w", name, err)
		}
		vars[name] = v
		return nil
	})
	t := fs.Float64("time", 0, "simulation time")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if *help || c.helpFlag {
		_, _ = fmt.Fprint(c.stdout, evalUsage)
		return exitOK
	}
	if fs.NArg() == 0 {
		_, _ = fmt.Fprint(c.stderr, evalUsage)
		return exitError
	}

	v, err := evaluate(strings.Join(fs.Args(), " "), vars, *t)
	if err != nil {
		c.printError("%v", err)
		return exitError
	}
	return c.withOutput(func(w io.Writer) error {
		_, err := fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64))
		return err
	})
}

func evaluate(text string, vars map[string]float64, t float64) (float64, error) {
	n, err := formula.Parse(text)
	if err != nil {
		return 0, err
	}
	e := ast.Evaluator{
		Values: func(name string) (float64, bool) {
			v, ok := vars[name]
			return v, ok
		},
		Time: t,
	}
	return e.Eval(n)
}
