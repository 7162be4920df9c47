// Package renderer produces markdown views of ledger data for terminal
// display. It only formats: all data is computed by the caller.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/stockpile"
)

// Inventory renders one account's (item, quantity) listing as a markdown
// table. The caller provides the pairs already sorted.
func Inventory(owner string, items []stockpile.ItemCount) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Inventory of %s\n\n", owner)
	if len(items) == 0 {
		b.WriteString("The inventory is empty.\n")
		return b.String()
	}
	b.WriteString("| Item | Quantity |\n")
	b.WriteString("|------|---------:|\n")
	for _, it := range items {
		fmt.Fprintf(&b, "| %s | %s |\n", it.Item, it.Quantity)
	}
	return b.String()
}

// Accounts renders the accounts of one namespace as a markdown table.
func Accounts(namespace string, accounts []stockpile.Account) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Accounts in %s\n\n", namespace)
	if len(accounts) == 0 {
		b.WriteString("No accounts.\n")
		return b.String()
	}
	b.WriteString("| Account | Name | Created | Items |\n")
	b.WriteString("|---------|------|---------|------:|\n")
	for _, acc := range accounts {
		fmt.Fprintf(&b, "| %s | %s | %s | %d |\n",
			acc.ID, acc.Name, acc.CreatedAt.Format("2006-01-02 15:04:05"), len(acc.Items))
	}
	return b.String()
}

// AllAccounts renders every account of the ledger, grouped by namespace.
func AllAccounts(accounts []stockpile.NamespaceAccount) string {
	var b strings.Builder
	b.WriteString("# All accounts\n\n")
	if len(accounts) == 0 {
		b.WriteString("No accounts.\n")
		return b.String()
	}
	b.WriteString("| Namespace | Account | Name | Created |\n")
	b.WriteString("|-----------|---------|------|--------|\n")
	for _, na := range accounts {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			na.Namespace, na.Account.ID, na.Account.Name,
			na.Account.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return b.String()
}

// Settings renders the settings of one namespace as a markdown list, in the
// document's key order.
func Settings(namespace string, s stockpile.Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Settings for %s\n\n", namespace)
	fmt.Fprintf(&b, "- PAYDAY_TIME: %d\n", s.PaydayTime)
	fmt.Fprintf(&b, "- PAYDAY_CREDITS: %d\n", s.PaydayCredits)
	fmt.Fprintf(&b, "- SLOT_MIN: %d\n", s.SlotMin)
	fmt.Fprintf(&b, "- SLOT_MAX: %d\n", s.SlotMax)
	fmt.Fprintf(&b, "- SLOT_TIME: %d\n", s.SlotTime)
	fmt.Fprintf(&b, "- REGISTER_CREDITS: %d\n", s.RegisterCredits)
	return b.String()
}
