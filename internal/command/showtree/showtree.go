package showtree

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/DobbiKov/translate-dir-lib/internal/command"
	"github.com/DobbiKov/translate-dir-lib/internal/lang"
	"github.com/DobbiKov/translate-dir-lib/internal/middleware"
	"github.com/DobbiKov/translate-dir-lib/internal/project"
	"github.com/DobbiKov/translate-dir-lib/internal/snapshot"
)

type Command struct{}

func (c *Command) Name() string      { return "tree" }
func (c *Command) Short() string     { return "E" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "tree [language] [-o text|json|yaml]" }
func (c *Command) Brief() string     { return "Print a stored directory snapshot" }
func (c *Command) Help() string {
	return `Print the snapshot of the source directory, or of the target directory
of the given language, as recorded by the last scan or sync.

In text output translatable files are marked with "*".`
}

func (c *Command) Subcommands() []command.Command { return nil }

func (c *Command) Flags(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "text", "output format: text, json or yaml")
}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) > 1 {
		return command.Usagef(c, "expected at most one language")
	}
	format, _ := ctx.Flags.GetString("output")

	p := ctx.Project
	var (
		dir snapshot.Directory
		ok  bool
	)
	if len(ctx.Args) == 0 {
		dir, ok = p.Source()
		if !ok {
			return project.ErrNoSource
		}
	} else {
		l, err := lang.Parse(ctx.Args[0])
		if err != nil {
			return command.Usagef(c, "%w", err)
		}
		dir, ok = p.Target(l)
		if !ok {
			return fmt.Errorf("%w: %s", project.ErrTargetNotInProject, l)
		}
	}

	switch strings.ToLower(format) {
	case "text":
		writeText(ctx.Stdout, &dir, p.Rel(dir.Path), "")
		return nil
	case "json":
		enc := json.NewEncoder(ctx.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(dir)
	case "yaml":
		enc := yaml.NewEncoder(ctx.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(dir); err != nil {
			return err
		}
		return enc.Close()
	default:
		return command.Usagef(c, "unknown output format %q", format)
	}
}

func writeText(w io.Writer, dir *snapshot.Directory, label, indent string) {
	fmt.Fprintf(w, "%s%s/\n", indent, label)
	for i := range dir.Dirs {
		writeText(w, &dir.Dirs[i], dir.Dirs[i].Name, indent+"  ")
	}
	for _, f := range dir.Files {
		mark := ""
		if f.Translatable {
			mark = " *"
		}
		fmt.Fprintf(w, "%s  %s%s\n", indent, f.Name, mark)
	}
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
