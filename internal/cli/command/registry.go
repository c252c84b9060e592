package command

import "sort"

// Registry returns all CLI subcommands keyed by name.
func Registry() map[string]Command {
	commands := []Command{
		{
			Name:    "init",
			Usage:   "init [-f]",
			Summary: "initialize slither in a directory",
			Run:     runInit,
		},
		{
			Name:    "addset",
			Usage:   "addset",
			Summary: "add a new test set",
			Run:     runAddSet,
		},
		{
			Name:    "addtest",
			Usage:   "addtest <set>",
			Summary: "add a new test case to a testset",
			Run:     runAddTest,
		},
		{
			Name:    "edittest",
			Usage:   "edittest <set> <number>",
			Summary: "edit an existing test case",
			Run:     runEditTest,
		},
		{
			Name:    "cattest",
			Usage:   "cattest <set> <number> [-in | -out]",
			Summary: "print a test case",
			Run:     runCatTest,
		},
		{
			Name:    "test",
			Usage:   "test <set> [-tests 1,3,5-8] [-no-browse]",
			Summary: "run a test set",
			Run:     runTest,
		},
	}
	registry := make(map[string]Command, len(commands))
	for _, cmd := range commands {
		registry[cmd.Name] = cmd
	}
	return registry
}

// Names returns the registered subcommand names in alphabetical order.
func Names(registry map[string]Command) []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
