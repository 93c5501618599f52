// Package cmd implements the CLI application to manage a BookPesa book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/bookpesa/bookpesa"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application. A main package
// registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&signupCmd{},
	&loginCmd{},
	&logoutCmd{},
	&usersCmd{},
	&addCmd{},
	&stockCmd{},
	&loanCmd{},
	&ledgerCmd{},
	&inventoryCmd{},
	&loansCmd{},
	&dashboardCmd{},
	&deleteCmd{},
	&clearCmd{},
	&exportCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("file", "", "Path to the BookPesa data file (overrides BOOKPESA_FILE)")

// storePath resolves the data file location: the -file flag wins, then the
// environment configuration, then the default.
func storePath() string {
	if *storeFile != "" {
		return *storeFile
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning, could not read configuration: %v\n", err)
		return defaultStoreFile
	}
	return cfg.File
}

// openStore loads the store from the app data file. A missing or corrupt
// file starts an empty store; it never fails.
func openStore() *bookpesa.Store {
	return bookpesa.LoadStore(storePath())
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
