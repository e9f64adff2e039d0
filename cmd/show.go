package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/store"
	"github.com/etnz/store/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	name string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show a product of the catalog" }
func (*showCmd) Usage() string {
	return `stk show -n <name>

  Shows a single product.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Product name")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n flag is required.")
		return subcommands.ExitUsageError
	}

	_, s := openStore()
	p, ok := s.Product(c.name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %q: %v\n", c.name, store.ErrProductNotFound)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.InventoryMarkdown([]store.Product{p}, renderer.ListFormat))
	return subcommands.ExitSuccess
}
