package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bookpesa/bookpesa"
	"github.com/google/subcommands"
)

type addCmd struct {
	desc   string
	amount string
	date   string
	tag    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a cash ledger entry" }
func (*addCmd) Usage() string {
	return `bookpesa add -d <description> -a <amount> [-on <date>] [-t <tag>]

  Records one cash-flow entry on the current account. Positive amounts are
  income, negative amounts are expenses. The date defaults to today and the
  tag to "other". A non-numeric amount counts as 0.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.desc, "d", "", "Description of the entry.")
	f.StringVar(&p.amount, "a", "", "Signed amount (positive income, negative expense).")
	f.StringVar(&p.date, "on", "", "Entry date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&p.tag, "t", "", "Category tag. Defaults to \"other\".")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var on bookpesa.Date
	if p.date != "" {
		var err error
		on, err = bookpesa.ParseDate(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}

	store := openStore()
	entry, err := store.AddLedgerEntry(p.desc, bookpesa.ParseAmount(p.amount), on, p.tag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %q %s on %s [%s] (id %s).\n",
		entry.Description, bookpesa.Ksh(entry.Amount), entry.Date, entry.Tag, entry.ID)
	return subcommands.ExitSuccess
}
