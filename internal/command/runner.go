package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/DobbiKov/translate-dir-lib/internal/logging"
)

// UsageError reports a command line the command cannot make sense of.
type UsageError struct {
	Usage string
	Err   error
}

func (e *UsageError) Error() string {
	if e.Usage == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v\nusage: %s", e.Err, e.Usage)
}

func (e *UsageError) Unwrap() error { return e.Err }

// Usagef returns a UsageError carrying the usage line of cmd.
func Usagef(cmd Command, format string, args ...any) error {
	return &UsageError{Usage: cmd.Usage(), Err: fmt.Errorf(format, args...)}
}

// ExactArgs fails with a UsageError unless ctx has exactly n arguments.
func ExactArgs(cmd Command, ctx *Context, n int) error {
	if len(ctx.Args) != n {
		return Usagef(cmd, "expected %d argument(s), got %d", n, len(ctx.Args))
	}
	return nil
}

// Execute resolves the command named by args in the global tree, parses
// its flags and runs it.
func Execute(ctx *Context, args []string) error {
	node, remaining, err := ResolveCommand(args)
	if err != nil {
		return err
	}
	return run(ctx, node.Cmd, remaining)
}

func run(ctx *Context, cmd Command, args []string) error {
	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	fs.SetOutput(ctx.Stderr)
	fs.Usage = func() {}
	cmd.Flags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			PrintHelp(ctx, cmd)
			return nil
		}
		return &UsageError{Usage: cmd.Usage(), Err: err}
	}

	ctx.Args = fs.Args()
	ctx.Flags = fs
	ctx.Logger = logging.Nop(ctx.Logger)
	if ctx.Ctx == nil {
		ctx.Ctx = context.Background()
	}
	return cmd.Run(ctx)
}

// PrintHelp writes the detailed help of cmd to ctx.Stdout.
func PrintHelp(ctx *Context, cmd Command) {
	if usage := cmd.Usage(); usage != "" {
		fmt.Fprintf(ctx.Stdout, "Usage: %s\n\n", usage)
	}
	fmt.Fprintf(ctx.Stdout, "%s\n", cmd.Help())

	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	cmd.Flags(fs)
	if fs.HasFlags() {
		fmt.Fprintf(ctx.Stdout, "\nOptions:\n%s", fs.FlagUsages())
	}
	if subs := cmd.Subcommands(); len(subs) > 0 {
		fmt.Fprint(ctx.Stdout, "\nSubcommands:\n")
		PrintList(ctx, subs)
	}
	if aliases := cmd.Aliases(); len(aliases) > 0 {
		fmt.Fprintf(ctx.Stdout, "\nAliases: %s\n", strings.Join(aliases, ", "))
	}
}

// PrintList writes one aligned "name  brief" line per command.
func PrintList(ctx *Context, cmds []Command) {
	longest := 0
	for _, cmd := range cmds {
		if l := len(cmd.Name()); l > longest {
			longest = l
		}
	}
	for _, cmd := range cmds {
		desc := cmd.Brief()
		if desc == "" {
			desc = "-"
		}
		padding := strings.Repeat(" ", longest-len(cmd.Name())+2)
		fmt.Fprintf(ctx.Stdout, "  %s%s%s\n", cmd.Name(), padding, desc)
	}
}
