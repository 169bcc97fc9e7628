// Package cliutil provides shared CLI utilities for gosbml command-line tools.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// GlobalFlags holds the flags accepted before or after any subcommand.
type GlobalFlags struct {
	Verbose    int
	OutputFile string
	HelpFlag   bool
}

// ParseArgs parses global flags and extracts the subcommand from args.
// Flags handled: -v/--verbose, -vv, -o/--output, -h/--help.
// Unrecognized flags are passed through to the subcommand, as is
// everything after "--".
func ParseArgs(args []string) (flags GlobalFlags, cmd string, cmdArgs []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			flags.HelpFlag = true
		case arg == "-v" || arg == "--verbose":
			flags.Verbose = max(flags.Verbose, 1)
		case arg == "-vv":
			flags.Verbose = 2
		case arg == "-o" || arg == "--output":
			if i+1 < len(args) {
				i++
				flags.OutputFile = args[i]
			}
		case strings.HasPrefix(arg, "--output="):
			flags.OutputFile = arg[9:]
		case arg == "--":
			cmdArgs = append(cmdArgs, args[i:]...)
			return
		case len(arg) > 1 && arg[0] == '-':
			cmdArgs = append(cmdArgs, arg)
		default:
			if cmd == "" {
				cmd = arg
			} else {
				cmdArgs = append(cmdArgs, arg)
			}
		}
	}
	return
}

// GetOutput opens the output file or returns stdout.
func GetOutput(outputFile string) (io.Writer, func(), error) {
	if outputFile == "" || outputFile == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// PrintError writes a formatted error message to w, normally stderr.
func PrintError(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "error: "+format+"\n", args...)
}
