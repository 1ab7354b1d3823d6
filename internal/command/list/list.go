package list

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/DobbiKov/translate-dir-lib/internal/command"
	"github.com/DobbiKov/translate-dir-lib/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "list" }
func (c *Command) Short() string     { return "L" }
func (c *Command) Aliases() []string { return []string{"ls"} }
func (c *Command) Usage() string     { return "list [--absolute]" }
func (c *Command) Brief() string     { return "List translatable source files" }
func (c *Command) Help() string {
	return `List the translatable source files, shallowest first.

Paths are shown relative to the project root unless --absolute is given.`
}

func (c *Command) Subcommands() []command.Command { return nil }

func (c *Command) Flags(fs *pflag.FlagSet) {
	fs.BoolP("absolute", "a", false, "print absolute paths")
}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) != 0 {
		return command.Usagef(c, "list takes no arguments")
	}
	abs, _ := ctx.Flags.GetBool("absolute")

	files, err := ctx.Project.TranslatableFiles()
	if err != nil {
		return err
	}
	for _, f := range files {
		if !abs {
			f = ctx.Project.Rel(f)
		}
		fmt.Fprintln(ctx.Stdout, f)
	}
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
			middleware.WithProject(),
		),
	)
}
