package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bookpesa/bookpesa"
	"github.com/google/subcommands"
)

type loanCmd struct {
	name   string
	amount string
	date   string
}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "record a loan given or taken" }
func (*loanCmd) Usage() string {
	return `bookpesa loan -n <name> -a <amount> [-on <date>]

  Records a loan on the current account. A positive amount is money owed to
  you, a negative one is money you owe. The date defaults to today.
`
}

func (p *loanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "n", "", "Borrower or lender name.")
	f.StringVar(&p.amount, "a", "", "Signed amount (positive owed to you).")
	f.StringVar(&p.date, "on", "", "Loan date (YYYY-MM-DD). Defaults to today.")
}

func (p *loanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	entry, err := store.AddLoanEntry(p.name, bookpesa.ParseAmount(p.amount), on)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded loan %q %s on %s (id %s).\n",
		entry.Name, bookpesa.Ksh(entry.Amount), entry.Date, entry.ID)
	return subcommands.ExitSuccess
}
