package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bookpesa/bookpesa"
	"github.com/google/subcommands"
)

type stockCmd struct {
	name  string
	qty   string
	price string
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "add or restock an inventory item" }
func (*stockCmd) Usage() string {
	return `bookpesa stock -n <name> -q <quantity> -p <unit_price>

  Adds a stocked good to the current account. When an item with the same
  name already exists (names are case-insensitive), the quantity is added
  to it and the unit price replaced.
`
}

func (p *stockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "n", "", "Item name, unique per account.")
	f.StringVar(&p.qty, "q", "", "Quantity to add on hand.")
	f.StringVar(&p.price, "p", "", "Unit price.")
}

func (p *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	item, err := store.AddInventoryItem(p.name, bookpesa.ParseAmount(p.qty), bookpesa.ParseAmount(p.price))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Stocked %q: qty %s at %s each (id %s).\n",
		item.Name, item.Quantity, bookpesa.Ksh(item.UnitPrice), item.ID)
	return subcommands.ExitSuccess
}
