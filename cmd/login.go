package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type loginCmd struct {
	username string
	pin      string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in to an existing account" }
func (*loginCmd) Usage() string {
	return `bookpesa login -u <username> -p <pin>

  Signs in to an existing account. The session persists across invocations
  until 'bookpesa logout'.
`
}

func (p *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.username, "u", "", "Username of the account.")
	f.StringVar(&p.pin, "p", "", "PIN of the account.")
}

func (p *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	acct, err := store.Authenticate(p.username, p.pin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Signed in as %q.\n", acct.Username)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "sign out of the current account" }
func (*logoutCmd) Usage() string {
	return `bookpesa logout

  Signs out. Harmless when already signed out.
`
}

func (*logoutCmd) SetFlags(f *flag.FlagSet) {}

func (*logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	if err := store.SignOut(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Signed out.")
	return subcommands.ExitSuccess
}
