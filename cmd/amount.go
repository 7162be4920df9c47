package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type amountCmd struct {
	namespace string
	id        string
	item      string
}

func (*amountCmd) Name() string     { return "amount" }
func (*amountCmd) Synopsis() string { return "show how many of one item an account holds" }
func (*amountCmd) Usage() string {
	return `spk amount -ns <namespace> -id <account> -item <item>

  Prints the account's quantity of an item. An item never deposited reads
  as zero.

Usage Examples:
$ spk amount -ns guild1 -id alice -item gold

`
}

func (c *amountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.namespace, "ns", "", "Namespace of the account (required)")
	f.StringVar(&c.id, "id", "", "Account id (required)")
	f.StringVar(&c.item, "item", "", "Item name (required)")
}

func (c *amountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.namespace == "" || c.id == "" || c.item == "" {
		fmt.Fprintln(os.Stderr, "Error: -ns, -id and -item flags are required.")
		return subcommands.ExitUsageError
	}

	system, err := openSystem()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	n, err := system.GetQuantity(c.namespace, c.id, c.item)
	if err != nil {
		printLedgerError(err)
		return subcommands.ExitFailure
	}

	fmt.Println(n)
	return subcommands.ExitSuccess
}
