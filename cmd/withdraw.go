package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockpile"
	"github.com/google/subcommands"
)

type withdrawCmd struct {
	namespace string
	id        string
	item      string
	amount    string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "remove items from an account" }
func (*withdrawCmd) Usage() string {
	return `spk withdraw -ns <namespace> -id <account> -item <item> -n <amount>

  Decrements the account's quantity of an item. Fails if the account holds
  less than the requested amount; an item never held counts as zero.

Usage Examples:
$ spk withdraw -ns guild1 -id alice -item gold -n 40

`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.namespace, "ns", "", "Namespace of the account (required)")
	f.StringVar(&c.id, "id", "", "Account id (required)")
	f.StringVar(&c.item, "item", "", "Item name (required)")
	f.StringVar(&c.amount, "n", "", "Amount to withdraw, a whole number (required)")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := system.Withdraw(c.namespace, c.id, c.item, n); err != nil {
		printLedgerError(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Withdrew %s %q from %s/%s.\n", n, c.item, c.namespace, c.id)
	return subcommands.ExitSuccess
}
