package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockpile/renderer"
	"github.com/google/subcommands"
)

type amountsCmd struct {
	namespace string
	id        string
}

func (*amountsCmd) Name() string     { return "amounts" }
func (*amountsCmd) Synopsis() string { return "list an account's full inventory" }
func (*amountsCmd) Usage() string {
	return `spk amounts -ns <namespace> -id <account>

  Lists every (item, quantity) pair of the account, sorted by item name.

Usage Examples:
$ spk amounts -ns guild1 -id alice

`
}

func (c *amountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.namespace, "ns", "", "Namespace of the account (required)")
	f.StringVar(&c.id, "id", "", "Account id (required)")
}

func (c *amountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.namespace == "" || c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -ns and -id flags are required.")
		return subcommands.ExitUsageError
	}

	system, err := openSystem()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	items, err := system.ListInventory(c.namespace, c.id)
	if err != nil {
		printLedgerError(err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Inventory(c.id, items))
	return subcommands.ExitSuccess
}
