package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bookpesa/bookpesa/renderer"
	"github.com/google/subcommands"
)

// The three listing commands print a collection of the current account
// verbatim, most recent insertion first.

type ledgerCmd struct{}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "list the cash ledger entries" }
func (*ledgerCmd) Usage() string {
	return `bookpesa ledger

  Lists the cash ledger of the current account, most recent first.
`
}
func (*ledgerCmd) SetFlags(f *flag.FlagSet) {}

func (*ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	entries, err := store.LedgerEntries()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	username, _ := store.CurrentUsername()
	printMarkdown(renderer.Ledger(username, entries))
	return subcommands.ExitSuccess
}

type inventoryCmd struct{}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "list the stock on hand" }
func (*inventoryCmd) Usage() string {
	return `bookpesa inventory

  Lists the inventory of the current account with per-item valuation.
`
}
func (*inventoryCmd) SetFlags(f *flag.FlagSet) {}

func (*inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	items, err := store.InventoryItems()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	username, _ := store.CurrentUsername()
	printMarkdown(renderer.Inventory(username, items))
	return subcommands.ExitSuccess
}

type loansCmd struct{}

func (*loansCmd) Name() string     { return "loans" }
func (*loansCmd) Synopsis() string { return "list the loans" }
func (*loansCmd) Usage() string {
	return `bookpesa loans

  Lists the loans of the current account, most recent first.
`
}
func (*loansCmd) SetFlags(f *flag.FlagSet) {}

func (*loansCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	loans, err := store.LoanEntries()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	username, _ := store.CurrentUsername()
	printMarkdown(renderer.Loans(username, loans))
	return subcommands.ExitSuccess
}
