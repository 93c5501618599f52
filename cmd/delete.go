package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete one record by id" }
func (*deleteCmd) Usage() string {
	return `bookpesa delete -id <record_id>

  Removes the record with the given id from whichever collection of the
  current account holds it. Ids appear in the listing commands. An unknown
  id is silently ignored.
`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the record to delete.")
}

func (p *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	store := openStore()
	if err := store.DeleteRecord(p.id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %s (if it existed).\n", p.id)
	return subcommands.ExitSuccess
}

type clearCmd struct {
	kind string
	yes  bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "empty a whole collection" }
func (*clearCmd) Usage() string {
	return `bookpesa clear -k <ledger|inventory|loans> -yes

  Empties the named collection of the current account. The -yes flag is the
  confirmation; without it nothing happens.
`
}

func (p *clearCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "k", "", "Collection to clear (ledger, inventory, loans).")
	f.BoolVar(&p.yes, "yes", false, "Confirm the clear.")
}

func (p *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := bookpesaKind(p.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if !p.yes {
		fmt.Fprintf(os.Stderr, "Refusing to clear %q without -yes.\n", kind)
		return subcommands.ExitUsageError
	}
	store := openStore()
	if err := store.ClearRecords(kind); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Cleared all %s records.\n", kind)
	return subcommands.ExitSuccess
}
