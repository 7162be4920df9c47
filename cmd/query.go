package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct {
	path string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run a JSONPath query against the raw ledger document" }
func (*queryCmd) Usage() string {
	return `spk query -p <jsonpath>

  Evaluates a JSONPath expression against the persisted ledger document and
  prints the result as JSON. Useful for inspection and scripting; the
  document is namespace id → account id → {name, created_at, items}.

Usage Examples:
$ spk query -p '$.guild1.alice.items.gold'
$ spk query -p '$.guild1.*.name'

`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "p", "", "JSONPath expression (required)")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.path == "" {
		fmt.Fprintln(os.Stderr, "Error: -p flag is required.")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: ledger document %q does not exist yet.\n", *ledgerFile)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	var doc interface{}
	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not parse ledger document: %v\n", err)
		return subcommands.ExitFailure
	}

	value, err := jsonpath.Get(c.path, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: query failed: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
