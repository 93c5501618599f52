package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bookpesa/bookpesa"
	"github.com/bookpesa/bookpesa/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	start string
	date  string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show balance, stock value and P&L" }
func (*dashboardCmd) Usage() string {
	return `bookpesa dashboard [-s <from_date>] [-d <to_date>]

  Shows the current account's cash balance, inventory valuation, and profit
  and loss. The P&L window defaults to the trailing 30 days ending today;
  each bound can be overridden independently.
`
}

func (p *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.start, "s", "", "The start date of the P&L window.")
	f.StringVar(&p.date, "d", "", "The end date of the P&L window.")
}

func (p *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var from, to bookpesa.Date
	var err error
	if p.start != "" {
		if from, err = bookpesa.ParseDate(p.start); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if p.date != "" {
		if to, err = bookpesa.ParseDate(p.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	store := openStore()
	summary, err := store.Summarize(from, to)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Dashboard(summary))
	return subcommands.ExitSuccess
}
