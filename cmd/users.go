package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type usersCmd struct{}

func (*usersCmd) Name() string     { return "users" }
func (*usersCmd) Synopsis() string { return "list known accounts" }
func (*usersCmd) Usage() string {
	return `bookpesa users

  Lists every account on this device, marking the signed-in one.
`
}

func (*usersCmd) SetFlags(f *flag.FlagSet) {}

func (*usersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	names := store.Usernames()
	if len(names) == 0 {
		fmt.Println("No users yet.")
		return subcommands.ExitSuccess
	}
	current, _ := store.CurrentUsername()
	for _, name := range names {
		if name == current {
			fmt.Printf("* %s\n", name)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}
	return subcommands.ExitSuccess
}
