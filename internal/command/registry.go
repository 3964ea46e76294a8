package command

import "sort"

// Registry maps command names and aliases to handlers. Built once at startup;
// read-only afterwards, so lookups need no locking.
type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: map[string]Command{}}
}

// Register adds a command (with middleware applied) under its name and all
// aliases.
func (r *Registry) Register(cmd Command, mws ...Middleware) {
	cmd = ApplyMiddlewares(cmd, mws...)
	r.commands[cmd.Name()] = cmd
	for _, a := range cmd.Aliases() {
		r.commands[a] = cmd
	}
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// All returns each registered command once, alias entries deduplicated,
// sorted by name.
func (r *Registry) All() []Command {
	seen := map[string]bool{}
	var list []Command
	for _, cmd := range r.commands {
		if seen[cmd.Name()] {
			continue
		}
		list = append(list, cmd)
		seen[cmd.Name()] = true
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}
