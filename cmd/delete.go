package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	name string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a product from the catalog" }
func (*deleteCmd) Usage() string {
	return `stk delete -n <name>

  Removes a product from the catalog. Its transactions stay in the ledger.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Product name")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n flag is required.")
		return subcommands.ExitUsageError
	}

	repo, s := openStore()
	if err := s.DeleteProduct(c.name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := saveStore(repo, s); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Product %q deleted.\n", c.name)
	return subcommands.ExitSuccess
}
