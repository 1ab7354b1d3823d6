package mark

import (
	"fmt"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/DobbiKov/translate-dir-lib/internal/command"
	"github.com/DobbiKov/translate-dir-lib/internal/middleware"
)

// AddCommand marks source files as translatable.
type AddCommand struct{}

func (c *AddCommand) Name() string      { return "add" }
func (c *AddCommand) Short() string     { return "A" }
func (c *AddCommand) Aliases() []string { return []string{"mark"} }
func (c *AddCommand) Usage() string     { return "add <path>..." }
func (c *AddCommand) Brief() string     { return "Mark source files as translatable" }
func (c *AddCommand) Help() string {
	return `Mark source files as translatable.

Translatable files are never copied by sync; their target versions are
left to translators. Paths must name files of the last scanned source
tree (see "refresh").`
}

func (c *AddCommand) Subcommands() []command.Command { return nil }
func (c *AddCommand) Flags(fs *pflag.FlagSet)        {}

func (c *AddCommand) Run(ctx *command.Context) error {
	return setFlag(c, ctx, true)
}

// RemoveCommand marks source files as untranslatable again.
type RemoveCommand struct{}

func (c *RemoveCommand) Name() string      { return "remove" }
func (c *RemoveCommand) Short() string     { return "R" }
func (c *RemoveCommand) Aliases() []string { return []string{"rm", "unmark"} }
func (c *RemoveCommand) Usage() string     { return "remove <path>..." }
func (c *RemoveCommand) Brief() string     { return "Mark source files as untranslatable" }
func (c *RemoveCommand) Help() string {
	return `Mark source files as untranslatable.

The files are copied into every target by the next sync, replacing any
translation found there.`
}

func (c *RemoveCommand) Subcommands() []command.Command { return nil }
func (c *RemoveCommand) Flags(fs *pflag.FlagSet)        {}

func (c *RemoveCommand) Run(ctx *command.Context) error {
	return setFlag(c, ctx, false)
}

// setFlag applies the flag to every argument and reports all failures.
func setFlag(c command.Command, ctx *command.Context, translatable bool) error {
	if len(ctx.Args) == 0 {
		return command.Usagef(c, "no paths given")
	}
	verb := "translatable"
	if !translatable {
		verb = "untranslatable"
	}

	var errs error
	for _, arg := range ctx.Args {
		path := ctx.Path(arg)
		if err := ctx.Project.SetTranslatable(path, translatable); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		fmt.Fprintf(ctx.Stdout, "%s: %s\n", verb, ctx.Project.Rel(path))
	}
	return errs
}

func init() {
	for _, cmd := range []command.Command{&AddCommand{}, &RemoveCommand{}} {
		command.RegisterCommand(
			command.ApplyMiddlewares(
				cmd,
				middleware.WithDebugArgsPrint(),
				middleware.WithProject(),
			),
		)
	}
}
