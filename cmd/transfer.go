package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/etnz/stockpile"
	"github.com/google/subcommands"
)

type transferCmd struct {
	namespace string
	from      string
	to        string
	item      string
	amount    string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move items from one account to another" }
func (*transferCmd) Usage() string {
	return `spk transfer -ns <namespace> -from <account> -to <account> -item <item> -n <amount>

  Moves items between two accounts of the same namespace. The transfer is
  atomic: either both accounts change, or neither does. Successful transfers
  are audit-logged.

Usage Examples:
$ spk transfer -ns guild1 -from alice -to bob -item gold -n 40

`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.namespace, "ns", "", "Namespace of both accounts (required)")
	f.StringVar(&c.from, "from", "", "Sender account id (required)")
	f.StringVar(&c.to, "to", "", "Receiver account id (required)")
	f.StringVar(&c.item, "item", "", "Item name (required)")
	f.StringVar(&c.amount, "n", "", "Amount to transfer, a whole number (required)")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.namespace == "" || c.from == "" || c.to == "" || c.item == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -ns, -from, -to, -item and -n flags are required.")
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

	if err := system.Transfer(c.namespace, c.from, c.to, c.item, n); err != nil {
		printLedgerError(err)
		return subcommands.ExitFailure
	}

	slog.Info("transfer",
		"namespace", c.namespace,
		"from", c.from,
		"to", c.to,
		"item", c.item,
		"amount", n.Int64(),
	)
	fmt.Printf("Transferred %s %q from %s to %s.\n", n, c.item, c.from, c.to)
	return subcommands.ExitSuccess
}
