package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/DobbiKov/translate-dir-lib/internal/cli"
	"github.com/DobbiKov/translate-dir-lib/internal/command"
	_ "github.com/DobbiKov/translate-dir-lib/internal/commands"
	"github.com/DobbiKov/translate-dir-lib/internal/config"
	"github.com/DobbiKov/translate-dir-lib/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit code: 0 on
// success, 2 for usage errors and 1 for everything else.
func run(args []string, stdout, stderr io.Writer) int {
	err := execute(args, stdout, stderr)
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(stderr, exitErr.Message)
		return exitErr.Code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func execute(args []string, stdout, stderr io.Writer) error {
	opts, rest, shouldExit, err := cli.Parse(args, config.Load(), stdout)
	if err != nil || shouldExit {
		return err
	}

	logger, _, err := logging.New(logging.Config{
		Level:  opts.Settings.LogLevel,
		Format: opts.Settings.LogFormat,
	}, stderr)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	defer func() { _ = logger.Sync() }()

	dir := opts.Dir
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return err
		}
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = command.Execute(&command.Context{
		Ctx:      ctx,
		Dir:      dir,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		Settings: opts.Settings,
	}, rest)

	var usage *command.UsageError
	if errors.As(err, &usage) {
		return &cli.ExitError{Code: 2, Message: "Error: " + usage.Error()}
	}
	return err
}
