package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/DobbiKov/translate-dir-lib/internal/command"
	"github.com/DobbiKov/translate-dir-lib/internal/lang"
	"github.com/DobbiKov/translate-dir-lib/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "set-source" }
func (c *Command) Short() string     { return "S" }
func (c *Command) Aliases() []string { return []string{"source"} }
func (c *Command) Usage() string     { return "set-source <dir> <language>" }
func (c *Command) Brief() string     { return "Set the source directory and its language" }
func (c *Command) Help() string {
	return `Set the directory holding the documents to translate.

The directory must exist inside the project and must not be used by a
target language. Its files are scanned and start out untranslatable;
use "add" to mark the ones that need translating.

Languages: ` + strings.Join(lang.Names(), ", ")
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *pflag.FlagSet)        {}

func (c *Command) Run(ctx *command.Context) error {
	if err := command.ExactArgs(c, ctx, 2); err != nil {
		return err
	}
	l, err := lang.Parse(ctx.Args[1])
	if err != nil {
		return command.Usagef(c, "%w", err)
	}

	p := ctx.Project
	dir := ctx.Path(ctx.Args[0])
	rel, err := filepath.Rel(p.Root(), dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}
	if err := p.SetSource(rel, l); err != nil {
		return err
	}

	src, _ := p.Source()
	_, files := src.Count()
	fmt.Fprintf(ctx.Stdout, "Source set to %s (%s, %d files)\n", p.Rel(src.Path), l, files)
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
