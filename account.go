package stockpile

import (
	"iter"
	"maps"
	"slices"
	"time"
)

// timestampLayout is the creation timestamp format used in the persisted
// document. Timestamps are always UTC with second precision.
const timestampLayout = "2006-01-02 15:04:05"

// Inventory maps an item name to the quantity owned.
//
// Item names are case-sensitive and matched exactly, no normalization is
// applied. An absent item reads as zero.
type Inventory map[string]Quantity

// Get returns the quantity held for item, zero when the item is absent.
func (inv Inventory) Get(item string) Quantity { return inv[item] }

// Items returns an iterator over the inventory in ascending item-name order.
func (inv Inventory) Items() iter.Seq2[string, Quantity] {
	return func(yield func(string, Quantity) bool) {
		names := slices.Sorted(maps.Keys(inv))
		for _, name := range names {
			if !yield(name, inv[name]) {
				return
			}
		}
	}
}

// Account is one user's ledger entry within a namespace.
type Account struct {
	// ID is an opaque identifier, unique within the owning namespace.
	ID string
	// Name is the display name snapshot taken at creation time. It is not
	// kept in sync with any external directory.
	Name string
	// CreatedAt is the creation time, UTC, second precision.
	CreatedAt time.Time
	// Items holds the account's inventory.
	Items Inventory
}

// snapshot returns a copy of the account that shares no state with the
// ledger, so callers cannot mutate inventories behind the ledger's back.
func (a *Account) snapshot() Account {
	return Account{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		Items:     maps.Clone(a.Items),
	}
}

// ItemCount is one (item, quantity) pair of an inventory listing.
type ItemCount struct {
	Item     string
	Quantity Quantity
}

// NamespaceAccount pairs an account with its owning namespace id, as
// returned by ledger-wide listings.
type NamespaceAccount struct {
	Namespace string
	Account   Account
}
