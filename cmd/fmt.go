package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockpile"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validate and rewrite the ledger document in canonical form"
}
func (*fmtCmd) Usage() string {
	return `spk fmt

  Reads the ledger document, validates every record, and writes it back in
  canonical form (sorted keys, fixed indentation). Fails without touching
  the file if any record is corrupt.

Usage Examples:
$ spk fmt

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := stockpile.NewFileStore(*ledgerFile)

	ledger, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := store.Save(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %s.\n", *ledgerFile)
	return subcommands.ExitSuccess
}
