package initialize

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/DobbiKov/translate-dir-lib/internal/command"
	"github.com/DobbiKov/translate-dir-lib/internal/middleware"
	"github.com/DobbiKov/translate-dir-lib/internal/project"
)

type Command struct{}

func (c *Command) Name() string      { return "init" }
func (c *Command) Short() string     { return "I" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "init <name> [dir]" }
func (c *Command) Brief() string     { return "Create a translation project" }
func (c *Command) Help() string {
	return `Create an empty translation project.

Writes trans_conf.json into dir (the current directory by default). The
project name is used to name target directories created by set-target.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *pflag.FlagSet)        {}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) < 1 || len(ctx.Args) > 2 {
		return command.Usagef(c, "expected a project name and an optional directory")
	}
	dir := ctx.Dir
	if len(ctx.Args) == 2 {
		dir = ctx.Path(ctx.Args[1])
	}

	p, err := project.Init(ctx.Args[0], dir, ctx.ProjectOptions()...)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "Initialized project %q in %s\n", p.Name(), p.Root())
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
