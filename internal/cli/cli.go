// Package cli parses the global options that come before the command name.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/DobbiKov/translate-dir-lib/internal/command"
	"github.com/DobbiKov/translate-dir-lib/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options are the global options.
type Options struct {
	Verbose  bool
	Dir      string
	Settings config.Settings
}

// Parse processes the global options in args. It returns the options, the
// command line left for the command, and whether the program should exit
// cleanly because usage was printed.
func Parse(args []string, settings config.Settings, output io.Writer) (Options, []string, bool, error) {
	opts := Options{Settings: settings}
	flagSet := pflag.NewFlagSet("transdir", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SetInterspersed(false)
	flagSet.Usage = func() { printUsage(output, flagSet) }

	flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug messages")
	flagSet.StringVar(&opts.Settings.LogFormat, "log-format", settings.LogFormat, "log format: console or json")
	flagSet.StringVarP(&opts.Dir, "directory", "C", "", "run as if started in this directory")
	flagSet.IntVarP(&opts.Settings.Workers, "workers", "j", settings.Workers, "targets synced in parallel")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return opts, nil, true, nil
		}
		return opts, nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	opts.Settings.LogFormat = strings.ToLower(opts.Settings.LogFormat)
	switch opts.Settings.LogFormat {
	case "console", "json":
	default:
		return opts, nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'console' or 'json'"}
	}
	if opts.Settings.Workers < 1 {
		return opts, nil, false, &ExitError{Code: 2, Message: "invalid workers: must be at least 1"}
	}
	if opts.Verbose {
		opts.Settings.LogLevel = "debug"
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return opts, nil, true, nil
	}
	return opts, flagSet.Args(), false, nil
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprint(w, `transdir - keep translation directories in step with their source.

Usage:
  transdir [options] <command> [arguments]

Options:
`)
	fmt.Fprint(w, flagSet.FlagUsages())
	fmt.Fprint(w, "\nCommands:\n")
	command.PrintList(&command.Context{Stdout: w}, command.AllCommands())
	fmt.Fprintln(w, "\nType 'transdir help <command>' for details on a command.")
}
