package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/store"
	"github.com/etnz/store/date"
	"github.com/etnz/store/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	typ     string
	product string
	period  string
	date    string
	head    int
	tail    int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the ledger" }
func (*txCmd) Usage() string {
	return `stk tx [-type sale|purchase] [-n <product>] [-p <period> [-d <date>]] [-head <n>] [-tail <n>]

  Lists transactions from the ledger in the order they were recorded, with
  options for filtering and limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.typ, "type", "", "Only show transactions of this type (sale, purchase).")
	f.StringVar(&p.product, "n", "", "Only show transactions on this product.")
	f.StringVar(&p.period, "p", "", "Only show transactions in this period (day, week, month, year).")
	f.StringVar(&p.date, "d", "", "A date in the period, defaults to today.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

// filters returns the ledger filters selected by the flags.
func (p *txCmd) filters() ([]func(store.Transaction) bool, error) {
	filters := []func(store.Transaction) bool{store.AcceptAll}
	if p.typ != "" {
		t, err := store.ParseTransactionType(p.typ)
		if err != nil {
			return nil, err
		}
		filters = append(filters, store.ByType(t))
	}
	if p.product != "" {
		filters = append(filters, store.ByProduct(p.product))
	}
	if p.period != "" {
		period, err := date.ParsePeriod(p.period)
		if err != nil {
			return nil, fmt.Errorf("error parsing period: %w", err)
		}
		on := date.Today()
		if p.date != "" {
			if on, err = date.Parse(p.date); err != nil {
				return nil, fmt.Errorf("error parsing date: %w", err)
			}
		}
		filters = append(filters, store.InRange(date.NewRange(on, period)))
	}
	return filters, nil
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	filters, err := p.filters()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	_, s := openStore()
	transactions := s.Transactions(filters...)

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(transactions))
	return subcommands.ExitSuccess
}
