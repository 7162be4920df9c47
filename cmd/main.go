// Package cmd implements the CLI application to manage an item ledger.
package cmd

import (
	"flag"

	"github.com/etnz/stockpile"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to wire them into its commander.
func Register(c *subcommands.Commander) {
	c.Register(&registerCmd{}, "accounts")
	c.Register(&accountsCmd{}, "accounts")
	c.Register(&resetCmd{}, "accounts")

	c.Register(&depositCmd{}, "items")
	c.Register(&withdrawCmd{}, "items")
	c.Register(&setCmd{}, "items")
	c.Register(&transferCmd{}, "items")
	c.Register(&amountCmd{}, "items")
	c.Register(&amountsCmd{}, "items")

	c.Register(&settingsCmd{}, "admin")
	c.Register(&queryCmd{}, "admin")
	c.Register(&fmtCmd{}, "admin")
}

// As a CLI application with a short-lived lifecycle, app-wide flags are fine
// as globals here.

var ledgerFile = flag.String("ledger-file", "data/storage.json", "Path to the ledger document (JSON)")
var settingsFile = flag.String("settings-file", "data/settings.json", "Path to the settings document (JSON)")

// openSystem loads the ledger document and wires it into a System.
func openSystem() (*stockpile.System, error) {
	return stockpile.NewSystem(stockpile.NewFileStore(*ledgerFile))
}
