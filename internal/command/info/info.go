package info

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/DobbiKov/translate-dir-lib/internal/command"
	"github.com/DobbiKov/translate-dir-lib/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "info" }
func (c *Command) Short() string     { return "N" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "info" }
func (c *Command) Brief() string     { return "Show the project configuration" }
func (c *Command) Help() string {
	return `Show the project name, root, source directory and target directories.`
}

func (c *Command) Subcommands() []command.Command { return nil }
func (c *Command) Flags(fs *pflag.FlagSet)        {}

func (c *Command) Run(ctx *command.Context) error {
	p := ctx.Project
	cfg := p.Config()
	out := ctx.Stdout

	fmt.Fprintf(out, "Project: %s\n", cfg.Name)
	fmt.Fprintf(out, "Root:    %s\n", p.Root())
	if cfg.SrcDir == nil {
		fmt.Fprintln(out, "Source:  (not set)")
	} else {
		_, files := cfg.SrcDir.Dir.Count()
		translatable, err := p.TranslatableFiles()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Source:  %s %s (%d files, %d translatable)\n",
			cfg.SrcDir.Language, p.Rel(cfg.SrcDir.Dir.Path), files, len(translatable))
	}

	if len(cfg.LangDirs) == 0 {
		fmt.Fprintln(out, "Targets: (none)")
		return nil
	}
	fmt.Fprintln(out, "Targets:")
	for _, ld := range cfg.LangDirs {
		fmt.Fprintf(out, "  %-10s %s\n", ld.Language, p.Rel(ld.Dir.Path))
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
