package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type signupCmd struct {
	username string
	pin      string
}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create a new account and sign it in" }
func (*signupCmd) Usage() string {
	return `bookpesa signup -u <username> -p <pin>

  Creates a new account. The username is 2-20 characters from [a-z0-9_-]
  (it is lowercased first), the PIN exactly 5 digits. The new account
  becomes the current one.
`
}

func (p *signupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.username, "u", "", "Username of the new account.")
	f.StringVar(&p.pin, "p", "", "5-digit PIN of the new account.")
}

func (p *signupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	acct, err := store.CreateAccount(p.username, p.pin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created account %q and signed in.\n", acct.Username)
	return subcommands.ExitSuccess
}
