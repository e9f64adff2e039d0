package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/store"
	"github.com/google/subcommands"
)

type addCmd struct {
	name        string
	description string
	price       string
	quantity    int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a product to the catalog" }
func (*addCmd) Usage() string {
	return `stk add -n <name> -p <price> [-desc <description>] [-q <quantity>]

  Adds a product to the catalog. A product with the same name is replaced.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Product name")
	f.StringVar(&c.description, "desc", "", "Product description")
	f.StringVar(&c.price, "p", "", "Unit price, like 12.50")
	f.IntVar(&c.quantity, "q", 0, "Quantity in stock")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -n and -p flags are required.")
		return subcommands.ExitUsageError
	}
	price, err := store.ParsePrice(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	repo, s := openStore()
	p := store.Product{Name: c.name, Description: c.description, Price: price, Quantity: c.quantity}
	if err := s.AddProduct(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := saveStore(repo, s); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Product %q added.\n", c.name)
	return subcommands.ExitSuccess
}
