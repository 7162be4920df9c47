package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockpile"
	"github.com/google/subcommands"
)

type depositCmd struct {
	namespace string
	id        string
	item      string
	amount    string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "add items to an account" }
func (*depositCmd) Usage() string {
	return `spk deposit -ns <namespace> -id <account> -item <item> -n <amount>

  Increments the account's quantity of an item. Item names are case-sensitive
  and matched exactly.

Usage Examples:
$ spk deposit -ns guild1 -id alice -item gold -n 100

`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.namespace, "ns", "", "Namespace of the account (required)")
	f.StringVar(&c.id, "id", "", "Account id (required)")
	f.StringVar(&c.item, "item", "", "Item name (required)")
	f.StringVar(&c.amount, "n", "", "Amount to deposit, a whole number (required)")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.namespace == "" || c.id == "" || c.item == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -ns, -id, -item and -n flags are required.")
		return subcommands.ExitUsageError
	}

	n, err := stockpile.ParseQuantity(c.amount)
	if err != nil {
		printLedgerError(err)
		return subcommands.ExitUsageError
	}

	system, err := openSystem()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := system.Deposit(c.namespace, c.id, c.item, n); err != nil {
		printLedgerError(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deposited %s %q into %s/%s.\n", n, c.item, c.namespace, c.id)
	return subcommands.ExitSuccess
}
