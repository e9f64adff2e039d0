package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/store"
	"github.com/etnz/store/date"
	"github.com/google/subcommands"
)

// recordCmd records a sale or a purchase depending on typ.
type recordCmd struct {
	typ      store.TransactionType
	name     string
	quantity int
	price    string
	date     string
	memo     string
}

func (c *recordCmd) Name() string {
	if c.typ == store.Sale {
		return "sell"
	}
	return "purchase"
}
func (c *recordCmd) Synopsis() string {
	if c.typ == store.Sale {
		return "record a sale, taking units out of stock"
	}
	return "record a purchase, adding units to stock"
}
func (c *recordCmd) Usage() string {
	if c.typ == store.Sale {
		return `stk sell -n <name> -q <quantity> -p <price> [-d <date>] [-m <memo>]

  Records the sale of a product in the catalog. The sale is refused when the
  stock is not sufficient.
`
	}
	return `stk purchase -n <name> -q <quantity> -p <price> [-d <date>] [-m <memo>]

  Records a purchase. An unknown product is added to the catalog with the
  purchase price.
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Product name")
	f.IntVar(&c.quantity, "q", 0, "Quantity")
	f.StringVar(&c.price, "p", "", "Unit price")
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.memo, "m", "", "Optional memo")
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -n and -p flags are required.")
		return subcommands.ExitUsageError
	}
	price, err := store.ParsePrice(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if price.IsNegative() {
		fmt.Fprintf(os.Stderr, "Error: %v\n", store.ErrInvalidPrice)
		return subcommands.ExitUsageError
	}
	opts := []store.RecordOption{store.WithMemo(c.memo)}
	if c.date != "" {
		on, err := date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		opts = append(opts, store.WithDate(on))
	}

	repo, s := openStore()
	record := s.Sell
	if c.typ == store.Purchase {
		record = s.Purchase
	}
	tx, err := record(c.name, c.quantity, price, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := saveStore(repo, s); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Println(describe(tx))
	return subcommands.ExitSuccess
}

// describe returns a one line summary of tx.
func describe(tx store.Transaction) string {
	verb := "Sold"
	if tx.Type == store.Purchase {
		verb = "Purchased"
	}
	return fmt.Sprintf("%s %d %q at %s, total %s.", verb, tx.Quantity, tx.Product, tx.Price, tx.Total)
}
