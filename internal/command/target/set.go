package target

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/DobbiKov/translate-dir-lib/internal/command"
	"github.com/DobbiKov/translate-dir-lib/internal/lang"
	"github.com/DobbiKov/translate-dir-lib/internal/middleware"
)

type SetCommand struct{}

func (c *SetCommand) Name() string      { return "set-target" }
func (c *SetCommand) Short() string     { return "T" }
func (c *SetCommand) Aliases() []string { return []string{"add-target"} }
func (c *SetCommand) Usage() string     { return "set-target <language> [--dir <path>]" }
func (c *SetCommand) Brief() string     { return "Add a target language" }
func (c *SetCommand) Help() string {
	return `Add a language to translate the source into.

Without --dir, a new directory named after the project and the language
suffix (book_fr, book_en, ...) is created next to the source; it must not
exist yet. With --dir, an existing directory inside the project is used
instead, replacing the one previously set for that language.

Languages: ` + strings.Join(lang.Names(), ", ")
}

func (c *SetCommand) Subcommands() []command.Command { return nil }

func (c *SetCommand) Flags(fs *pflag.FlagSet) {
	fs.StringP("dir", "d", "", "use this existing directory for the language")
}

func (c *SetCommand) Run(ctx *command.Context) error {
	if err := command.ExactArgs(c, ctx, 1); err != nil {
		return err
	}
	l, err := parseLanguage(c, ctx.Args[0])
	if err != nil {
		return err
	}
	dir, err := ctx.Flags.GetString("dir")
	if err != nil {
		return err
	}

	var path string
	if dir != "" {
		path, err = ctx.Project.AddTargetDir(l, ctx.Path(dir))
	} else {
		path, err = ctx.Project.AddTarget(l)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "Target %s: %s\n", l, ctx.Project.Rel(path))
	return nil
}

func parseLanguage(c command.Command, s string) (lang.Language, error) {
	l, err := lang.Parse(s)
	if err != nil {
		return "", command.Usagef(c, "%w", err)
	}
	return l, nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&SetCommand{},
			middleware.WithDebugArgsPrint(),
			middleware.WithProject(),
		),
	)
}
