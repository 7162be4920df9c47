package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockpile/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct {
	namespace string
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts, per namespace or ledger-wide" }
func (*accountsCmd) Usage() string {
	return `spk accounts [-ns <namespace>]

  Lists the accounts of one namespace, or of the whole ledger when -ns is
  omitted.

Usage Examples:
$ spk accounts -ns guild1
$ spk accounts

`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.namespace, "ns", "", "Namespace to list; all namespaces when empty")
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	system, err := openSystem()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.namespace != "" {
		printMarkdown(renderer.Accounts(c.namespace, system.ListAccounts(c.namespace)))
	} else {
		printMarkdown(renderer.AllAccounts(system.ListAllAccounts()))
	}
	return subcommands.ExitSuccess
}
