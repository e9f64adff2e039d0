package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/store/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	format string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the products of the catalog" }
func (*listCmd) Usage() string {
	return `stk list [-format table|list]

  Lists every product of the catalog, sorted by name.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "table", "Output layout: table or list")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format, err := renderer.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	_, s := openStore()
	printMarkdown(renderer.InventoryMarkdown(s.Report().Products, format))
	return subcommands.ExitSuccess
}
