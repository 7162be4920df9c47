package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/etnz/stockpile"
)

// printLedgerError translates a typed ledger failure into a user-facing
// message on stderr. The ledger itself never formats user text.
func printLedgerError(err error) {
	switch {
	case errors.Is(err, stockpile.ErrNoAccount):
		fmt.Fprintln(os.Stderr, "Error: that account does not exist. Open one with `spk register`.")
	case errors.Is(err, stockpile.ErrAccountExists):
		fmt.Fprintln(os.Stderr, "Error: that account already exists.")
	case errors.Is(err, stockpile.ErrInsufficientBalance):
		fmt.Fprintln(os.Stderr, "Error: the account does not hold that many items.")
	case errors.Is(err, stockpile.ErrSameAccount):
		fmt.Fprintln(os.Stderr, "Error: cannot transfer items to the same account.")
	case errors.Is(err, stockpile.ErrNegativeAmount):
		fmt.Fprintln(os.Stderr, "Error: the amount must be zero or more.")
	case errors.Is(err, stockpile.ErrInvalidAmount):
		fmt.Fprintln(os.Stderr, "Error: the amount must be a whole number.")
	case errors.Is(err, stockpile.ErrInvalidDirective):
		fmt.Fprintln(os.Stderr, "Error: the amount must be a whole number, optionally prefixed with + or -.")
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
}
