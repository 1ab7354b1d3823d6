package refresh

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/DobbiKov/translate-dir-lib/internal/command"
	"github.com/DobbiKov/translate-dir-lib/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "refresh" }
func (c *Command) Short() string     { return "F" }
func (c *Command) Aliases() []string { return []string{"rescan"} }
func (c *Command) Usage() string     { return "refresh" }
func (c *Command) Brief() string     { return "Rescan the source directory" }
func (c *Command) Help() string {
	return `Rescan the source directory.

New files start out untranslatable. Files that are still present keep
their translatable flag; files that are gone are dropped.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *pflag.FlagSet)        {}

func (c *Command) Run(ctx *command.Context) error {
	p := ctx.Project
	changed, err := p.RefreshSource()
	if err != nil {
		return err
	}
	src, _ := p.Source()
	dirs, files := src.Count()
	translatable, err := p.TranslatableFiles()
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintf(ctx.Stdout, "%s is unchanged: %d directories, %d files, %d translatable\n",
			p.Rel(src.Path), dirs, files, len(translatable))
		return nil
	}
	fmt.Fprintf(ctx.Stdout, "Rescanned %s: %d directories, %d files, %d translatable\n",
		p.Rel(src.Path), dirs, files, len(translatable))
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
