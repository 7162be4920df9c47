package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/stockpile"
	"github.com/etnz/stockpile/renderer"
	"github.com/google/subcommands"
)

type settingsCmd struct {
	namespace string
	set       string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change a namespace's settings" }
func (*settingsCmd) Usage() string {
	return `spk settings -ns <namespace> [-set KEY=VALUE]

  Shows the settings of a namespace, falling back to defaults when none were
  ever stored. With -set, updates one option and persists the document.
  Recognized keys: PAYDAY_TIME, PAYDAY_CREDITS, SLOT_MIN, SLOT_MAX,
  SLOT_TIME, REGISTER_CREDITS.

Usage Examples:
$ spk settings -ns guild1
$ spk settings -ns guild1 -set SLOT_MAX=250

`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.namespace, "ns", "", "Namespace the settings belong to (required)")
	f.StringVar(&c.set, "set", "", "Update one option, as KEY=VALUE")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.namespace == "" {
		fmt.Fprintln(os.Stderr, "Error: -ns flag is required.")
		return subcommands.ExitUsageError
	}

	doc, err := stockpile.LoadSettings(*settingsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.set != "" {
		key, value, ok := strings.Cut(c.set, "=")
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: -set expects KEY=VALUE.")
			return subcommands.ExitUsageError
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %q is not a whole number.\n", value)
			return subcommands.ExitUsageError
		}
		settings := doc.For(c.namespace)
		if err := settings.Apply(key, n); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		doc[c.namespace] = settings
		if err := stockpile.SaveSettings(*settingsFile, doc); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.Settings(c.namespace, doc.For(c.namespace)))
	return subcommands.ExitSuccess
}
