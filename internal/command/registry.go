package command

import "sort"

var tree = NewTree()

// RegisterCommand adds a command to the global tree
func RegisterCommand(cmd Command) {
	tree.Register(cmd)
}

// ResolveCommand finds a command from args
func ResolveCommand(args []string) (*Node, []string, error) {
	return tree.Resolve(args)
}

// GetCommand returns a command by name
func GetCommand(name string) (Command, bool) {
	return tree.Get(name)
}

// AllCommands returns the top-level commands of the global tree sorted
// by name.
func AllCommands() []Command {
	return tree.Commands()
}

// Commands returns the top-level commands of t sorted by name. Aliases
// appear once.
func (t *CommandTree) Commands() []Command {
	cmds := make([]Command, 0, len(t.root.Subcommands))
	seen := make(map[string]struct{})
	for _, node := range t.root.Subcommands {
		if _, ok := seen[node.Cmd.Name()]; ok {
			continue
		}
		seen[node.Cmd.Name()] = struct{}{}
		cmds = append(cmds, node.Cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}
