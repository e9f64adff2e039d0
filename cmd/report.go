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

type reportCmd struct {
	report string
	format string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "report on inventory, sales, purchases and profit" }
func (*reportCmd) Usage() string {
	return `stk report [-r inventory|sales|purchases|all] [-format table|list]

  Prints the inventory, sales or purchase report. By default all of them are
  printed, followed by the total profit or loss.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.report, "r", "all", "Report to print: inventory, sales, purchases or all")
	f.StringVar(&c.format, "format", "table", "Output layout: table or list")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := store.ParseReportKind(c.report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	format, err := renderer.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	_, s := openStore()
	printMarkdown(renderer.ReportMarkdown(s.Report(), kind, format))
	return subcommands.ExitSuccess
}
