package help

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/DobbiKov/translate-dir-lib/internal/command"
	"github.com/DobbiKov/translate-dir-lib/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "help" }
func (c *Command) Short() string     { return "H" }
func (c *Command) Aliases() []string { return []string{"h", "?"} }
func (c *Command) Usage() string     { return "help [command]" }
func (c *Command) Brief() string     { return "Show help for commands" }
func (c *Command) Help() string {
	return `Display help information for commands.

Usage:
  help          List all commands.
  help <name>   Show detailed help for a specific command.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *pflag.FlagSet)        {}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) > 0 {
		return c.runCommandHelp(ctx, ctx.Args)
	}
	runListAllCommands(ctx)
	return nil
}

// runCommandHelp shows detailed help for a specific command
func (c *Command) runCommandHelp(ctx *command.Context, names []string) error {
	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
	}
	node, rest, err := command.ResolveCommand(lowered)
	if err != nil || len(rest) > 0 {
		return command.Usagef(c, "unknown command: %s", strings.Join(names, " "))
	}
	command.PrintHelp(ctx, node.Cmd)
	return nil
}

// runListAllCommands lists all commands in a Git-style layout
func runListAllCommands(ctx *command.Context) {
	fmt.Fprint(ctx.Stdout, "Available commands:\n\n")
	command.PrintList(ctx, command.AllCommands())
	fmt.Fprintln(ctx.Stdout, "\nType 'help <command>' to see detailed information about a specific command.")
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
