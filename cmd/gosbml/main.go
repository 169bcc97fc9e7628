// Command gosbml is a CLI tool for reading, checking, converting and
// dumping SBML models.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/gosbml/gosbml"
	"github.com/gosbml/gosbml/cmd/internal/cliutil"
)

// Exit codes.
const (
	exitOK     = 0 // success
	exitError  = 1 // user error or processing failure
	exitIssues = 2 // lint or read found messages at the failure threshold
)

const usage = `gosbml - SBML reader, checker and converter

Usage:
  gosbml <command> [options] [arguments]

Commands:
  read       Read documents and print their message logs
  lint       Read and check documents for consistency
  convert    Convert a document to another level and version
  translate  Translate between infix formulas and MathML
  eval       Evaluate an infix formula
  dump       Output a document as JSON
  version    Show version

Common options:
  -o, --output FILE  Write output to FILE instead of stdout
  -v, --verbose      Enable debug logging
  -vv                Enable trace logging (implies -v)
  -h, --help         Show help

Examples:
  gosbml read model.xml
  gosbml lint --l1 models/
  gosbml convert --level 1 --version 2 -o out.xml model.xml
  gosbml translate "k1*s1/(Km + s1)"
  gosbml eval -D x=2 "x^3 + 1"
  gosbml dump model.xml
`

type cli struct {
	verbose  int
	output   string
	helpFlag bool
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags, cmd, cmdArgs := cliutil.ParseArgs(args)
	c := &cli{
		verbose:  flags.Verbose,
		output:   flags.OutputFile,
		helpFlag: flags.HelpFlag,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	return c.dispatch(cmd, cmdArgs)
}

func (c *cli) dispatch(cmd string, args []string) int {
	if c.helpFlag && cmd == "" {
		_, _ = fmt.Fprint(c.stdout, usage)
		return exitOK
	}
	if cmd == "" {
		_, _ = fmt.Fprint(c.stderr, usage)
		return exitError
	}

	switch cmd {
	case "read":
		return c.cmdRead(args)
	case "lint":
		return c.cmdLint(args)
	case "convert":
		return c.cmdConvert(args)
	case "translate":
		return c.cmdTranslate(args)
	case "eval":
		return c.cmdEval(args)
	case "dump":
		return c.cmdDump(args)
	case "version":
		_, _ = fmt.Fprintf(c.stdout, "gosbml %s\n", version())
		return exitOK
	case "help":
		_, _ = fmt.Fprint(c.stdout, usage)
		return exitOK
	default:
		_, _ = fmt.Fprintf(c.stderr, "unknown command: %s\n\n", cmd)
		_, _ = fmt.Fprint(c.stderr, usage)
		return exitError
	}
}

func (c *cli) setupLogger() *slog.Logger {
	if c.verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if c.verbose >= 2 {
		level = gosbml.LevelTrace
	}
	return slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// options returns the read/write options shared by every command.
func (c *cli) options(extra ...gosbml.Option) []gosbml.Option {
	opts := []gosbml.Option{gosbml.WithProgram("gosbml", version())}
	if logger := c.setupLogger(); logger != nil {
		opts = append(opts, gosbml.WithLogger(logger))
	}
	return append(opts, extra...)
}

// withOutput runs fn against the -o destination or stdout.
func (c *cli) withOutput(fn func(w io.Writer) error) int {
	if c.output == "" {
		if err := fn(c.stdout); err != nil {
			c.printError("%v", err)
			return exitError
		}
		return exitOK
	}
	w, done, err := cliutil.GetOutput(c.output)
	if err != nil {
		c.printError("cannot create output: %v", err)
		return exitError
	}
	defer done()
	if err := fn(w); err != nil {
		c.printError("%v", err)
		return exitError
	}
	return exitOK
}

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return gosbml.Version
}

func (c *cli) printError(format string, args ...any) {
	cliutil.PrintError(c.stderr, format, args...)
}
