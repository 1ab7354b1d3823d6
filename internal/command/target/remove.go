package target

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/DobbiKov/translate-dir-lib/internal/command"
	"github.com/DobbiKov/translate-dir-lib/internal/middleware"
)

type RemoveCommand struct{}

func (c *RemoveCommand) Name() string      { return "remove-target" }
func (c *RemoveCommand) Short() string     { return "U" }
func (c *RemoveCommand) Aliases() []string { return []string{"rm-target"} }
func (c *RemoveCommand) Usage() string     { return "remove-target <language> [--keep-dir]" }
func (c *RemoveCommand) Brief() string     { return "Remove a target language and its directory" }
func (c *RemoveCommand) Help() string {
	return `Remove a target language from the project.

The target directory is deleted with everything in it, translations
included, unless --keep-dir is given.`
}

func (c *RemoveCommand) Subcommands() []command.Command { return nil }

func (c *RemoveCommand) Flags(fs *pflag.FlagSet) {
	fs.BoolP("keep-dir", "k", false, "leave the target directory on disk")
}

func (c *RemoveCommand) Run(ctx *command.Context) error {
	if err := command.ExactArgs(c, ctx, 1); err != nil {
		return err
	}
	l, err := parseLanguage(c, ctx.Args[0])
	if err != nil {
		return err
	}
	keep, err := ctx.Flags.GetBool("keep-dir")
	if err != nil {
		return err
	}

	if err := ctx.Project.RemoveTarget(l, keep); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "Removed target %s\n", l)
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&RemoveCommand{},
			middleware.WithDebugArgsPrint(),
			middleware.WithProject(),
		),
	)
}
