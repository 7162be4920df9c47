package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct {
	namespace string
	yes       bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete every account of a namespace" }
func (*resetCmd) Usage() string {
	return `spk reset -ns <namespace> -yes

  Deletes all accounts of the namespace. Refuses to run without the -yes
  flag. Other namespaces are unaffected.

Usage Examples:
$ spk reset -ns guild1 -yes

`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.namespace, "ns", "", "Namespace to wipe (required)")
	f.BoolVar(&c.yes, "yes", false, "Confirm the wipe")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.namespace == "" {
		fmt.Fprintln(os.Stderr, "Error: -ns flag is required.")
		return subcommands.ExitUsageError
	}
	if !c.yes {
		fmt.Fprintf(os.Stderr, "This will delete all accounts of namespace %q.\nIf you're sure, re-run with -yes.\n", c.namespace)
		return subcommands.ExitUsageError
	}

	system, err := openSystem()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := system.WipeNamespace(c.namespace); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	slog.Info("namespace wiped", "namespace", c.namespace)
	fmt.Printf("All accounts of namespace %q have been deleted.\n", c.namespace)
	return subcommands.ExitSuccess
}
