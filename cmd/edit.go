package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/store"
	"github.com/google/subcommands"
)

type editCmd struct {
	name        string
	description string
	price       string
	quantity    int
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a product of the catalog" }
func (*editCmd) Usage() string {
	return `stk edit -n <name> [-desc <description>] [-p <price>] [-q <quantity>]

  Edits an existing product. Only the fields given on the command line are
  changed, at least one is required.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Product name")
	f.StringVar(&c.description, "desc", "", "New description")
	f.StringVar(&c.price, "p", "", "New unit price")
	f.IntVar(&c.quantity, "q", 0, "New quantity in stock")
}

// edit returns the changes for the flags explicitly set in f.
func (c *editCmd) edit(f *flag.FlagSet) (store.Edit, error) {
	var e store.Edit
	var err error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "desc":
			e.Description = &c.description
		case "q":
			e.Quantity = &c.quantity
		case "p":
			var p store.Price
			if p, err = store.ParsePrice(c.price); err == nil {
				e.Price = &p
			}
		}
	})
	return e, err
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n flag is required.")
		return subcommands.ExitUsageError
	}
	e, err := c.edit(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	repo, s := openStore()
	if err := s.EditProduct(c.name, e); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := saveStore(repo, s); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Product %q updated.\n", c.name)
	return subcommands.ExitSuccess
}
