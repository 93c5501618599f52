package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bookpesa/bookpesa"
	"github.com/google/subcommands"
)

// bookpesaKind parses a -k flag value into a record kind.
func bookpesaKind(s string) (bookpesa.RecordKind, error) {
	kind, err := bookpesa.ParseRecordKind(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q (want ledger, inventory or loans)", err, s)
	}
	return kind, nil
}

type exportCmd struct {
	kind       string
	outputFile string
	stdout     bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a collection as CSV" }
func (*exportCmd) Usage() string {
	return `bookpesa export -k <ledger|inventory|loans> [-o <file>] [-stdout]

  Serializes one collection of the current account as CSV. By default the
  file is named {username}_{kind}.csv in the working directory.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "k", "", "Collection to export (ledger, inventory, loans).")
	f.StringVar(&p.outputFile, "o", "", "Output file. Defaults to {username}_{kind}.csv.")
	f.BoolVar(&p.stdout, "stdout", false, "Write the CSV to stdout instead of a file.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := bookpesaKind(p.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store := openStore()
	csv, err := store.ExportCSV(kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if p.stdout {
		fmt.Println(csv)
		return subcommands.ExitSuccess
	}

	filename := p.outputFile
	if filename == "" {
		username, _ := store.CurrentUsername()
		filename = bookpesa.ExportFilename(username, kind)
	}
	if err := os.WriteFile(filename, []byte(csv), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %s to %s.\n", kind, filename)
	return subcommands.ExitSuccess
}
