package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockpile"
	"github.com/google/subcommands"
)

type setCmd struct {
	namespace string
	id        string
	item      string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set, add or remove items using a signed amount" }
func (*setCmd) Usage() string {
	return `spk set -ns <namespace> -id <account> -item <item> <directive>

  Applies an amount directive to the account's item:
    26   sets the quantity to 26
    +2   deposits 2
    -6   withdraws 6
  A signed zero is rejected as ambiguous.

Usage Examples:
$ spk set -ns guild1 -id alice -item gold 26
$ spk set -ns guild1 -id alice -item gold +2
$ spk set -ns guild1 -id alice -item gold -- -6

`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.namespace, "ns", "", "Namespace of the account (required)")
	f.StringVar(&c.id, "id", "", "Account id (required)")
	f.StringVar(&c.item, "item", "", "Item name (required)")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.namespace == "" || c.id == "" || c.item == "" {
		fmt.Fprintln(os.Stderr, "Error: -ns, -id and -item flags are required.")
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one amount directive is expected.")
		return subcommands.ExitUsageError
	}

	directive, err := stockpile.ParseDirective(f.Arg(0))
	if err != nil {
		printLedgerError(err)
		return subcommands.ExitUsageError
	}

	system, err := openSystem()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := system.Apply(c.namespace, c.id, c.item, directive); err != nil {
		printLedgerError(err)
		return subcommands.ExitFailure
	}

	switch directive.Op {
	case stockpile.OpDeposit:
		fmt.Printf("Deposited %s %q into %s/%s.\n", directive.Quantity, c.item, c.namespace, c.id)
	case stockpile.OpWithdraw:
		fmt.Printf("Withdrew %s %q from %s/%s.\n", directive.Quantity, c.item, c.namespace, c.id)
	default:
		fmt.Printf("Set %q of %s/%s to %s.\n", c.item, c.namespace, c.id, directive.Quantity)
	}
	return subcommands.ExitSuccess
}
