// Command stk manages the catalog, the stock and the sales of a store.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/store/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Performs shell completion and exits when invoked by the shell.
	cmd.Completion().Complete("stk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
