package main

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/spf13/pflag"

	"github.com/DobbiKov/translate-dir-lib/internal/command"
	_ "github.com/DobbiKov/translate-dir-lib/internal/commands"
)

func main() {
	tplBytes, err := os.ReadFile("README.md.tmpl")
	if err != nil {
		fmt.Printf("Failed to read template: %v\n", err)
		os.Exit(1)
	}

	tpl, err := template.New("readme").Parse(string(tplBytes))
	if err != nil {
		fmt.Printf("Failed to parse template: %v\n", err)
		os.Exit(1)
	}

	var sections strings.Builder
	for _, cmd := range command.AllCommands() {
		sections.WriteString(section(cmd))
	}

	data := map[string]string{
		"CommandSections": sections.String(),
	}

	outFile, err := os.Create("README.md")
	if err != nil {
		fmt.Printf("Failed to create README.md: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	if err := tpl.Execute(outFile, data); err != nil {
		fmt.Printf("Failed to render template: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("README.md generated successfully")
}

func section(cmd command.Command) string {
	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	cmd.Flags(fs)

	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n```\n%s\n\n%s\n", cmd.Name(), cmd.Usage(), cmd.Help())
	if fs.HasFlags() {
		fmt.Fprintf(&b, "\nOptions:\n%s", fs.FlagUsages())
	}
	b.WriteString("```\n\n")
	return b.String()
}
