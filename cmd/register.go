package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockpile"
	"github.com/google/subcommands"
)

type registerCmd struct {
	namespace string
	id        string
	name      string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "open a new account in a namespace" }
func (*registerCmd) Usage() string {
	return `spk register -ns <namespace> -id <account> [-name <display name>]

  Opens a new account with an empty inventory. The display name is a snapshot
  taken now; it defaults to the account id.

Usage Examples:
$ spk register -ns guild1 -id alice -name "Alice"

`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.namespace, "ns", "", "Namespace the account belongs to (required)")
	f.StringVar(&c.id, "id", "", "Account id, unique within the namespace (required)")
	f.StringVar(&c.name, "name", "", "Display name snapshot (defaults to the account id)")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.namespace == "" || c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -ns and -id flags are required.")
		return subcommands.ExitUsageError
	}
	if c.name == "" {
		c.name = c.id
	}

	system, err := openSystem()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	acc, err := system.CreateAccount(c.namespace, c.id, c.name)
	if errors.Is(err, stockpile.ErrAccountExists) {
		fmt.Fprintf(os.Stderr, "Error: account %q already exists in namespace %q.\n", c.id, c.namespace)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account %s/%s opened for %s.\n", c.namespace, acc.ID, acc.Name)
	return subcommands.ExitSuccess
}
