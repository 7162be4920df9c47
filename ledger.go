package stockpile

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"time"
)

// Ledger is the full namespace → account → inventory tree, held in memory.
//
// A namespace is an isolated scope: accounts in different namespaces never
// interact. Namespaces are created implicitly by the first account registered
// in them and emptied only by WipeNamespace.
//
// The Ledger is a plain data structure with no persistence and no locking;
// System wraps it with both. All reads are direct indexed lookups, the tree
// is never copied wholesale.
type Ledger struct {
	namespaces map[string]map[string]*Account
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{namespaces: make(map[string]map[string]*Account)}
}

// account resolves (namespace, id) or fails with ErrNoAccount.
// Existence is checked lazily: nothing is ever created on lookup.
func (l *Ledger) account(namespace, id string) (*Account, error) {
	acc := l.namespaces[namespace][id]
	if acc == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrNoAccount, namespace, id)
	}
	return acc, nil
}

// CreateAccount registers a new account with an empty inventory.
//
// It fails with ErrAccountExists if (namespace, id) is already registered.
// The display name is a snapshot; at is truncated to UTC second precision.
// On success it returns a snapshot of the new account.
func (l *Ledger) CreateAccount(namespace, id, name string, at time.Time) (Account, error) {
	if l.namespaces[namespace][id] != nil {
		return Account{}, fmt.Errorf("%w: %s/%s", ErrAccountExists, namespace, id)
	}
	if l.namespaces[namespace] == nil {
		l.namespaces[namespace] = make(map[string]*Account)
	}
	acc := &Account{
		ID:        id,
		Name:      name,
		CreatedAt: at.UTC().Truncate(time.Second),
		Items:     Inventory{},
	}
	l.namespaces[namespace][id] = acc
	return acc.snapshot(), nil
}

// AccountExists reports whether (namespace, id) is registered.
func (l *Ledger) AccountExists(namespace, id string) bool {
	return l.namespaces[namespace][id] != nil
}

// Deposit increments the account's quantity of item by n.
//
// It fails with ErrInvalidAmount if the resulting balance would leave the
// int64 range; the persisted document never holds a quantity its decoder
// would reject. Depositing zero is a no-op.
func (l *Ledger) Deposit(namespace, id, item string, n Quantity) error {
	if n.IsNegative() {
		return fmt.Errorf("%w: cannot deposit %s", ErrNegativeAmount, n)
	}
	acc, err := l.account(namespace, id)
	if err != nil {
		return err
	}
	if n.IsZero() {
		return nil
	}
	total := acc.Items.Get(item).Add(n)
	if !total.fitsInt64() {
		return fmt.Errorf("%w: balance of %q would leave the int64 range", ErrInvalidAmount, item)
	}
	acc.Items[item] = total
	return nil
}

// Withdraw decrements the account's quantity of item by n.
//
// An absent item counts as a zero balance, so withdrawing any positive
// amount from it fails with ErrInsufficientBalance. A failed withdrawal
// leaves the inventory untouched, and withdrawing zero is a no-op that
// never materializes an entry for an item the account does not hold.
func (l *Ledger) Withdraw(namespace, id, item string, n Quantity) error {
	if n.IsNegative() {
		return fmt.Errorf("%w: cannot withdraw %s", ErrNegativeAmount, n)
	}
	acc, err := l.account(namespace, id)
	if err != nil {
		return err
	}
	balance := acc.Items.Get(item)
	if balance.LessThan(n) {
		return fmt.Errorf("%w: %s/%s holds %s %q, want %s", ErrInsufficientBalance, namespace, id, balance, item, n)
	}
	if n.IsZero() {
		return nil
	}
	acc.Items[item] = balance.Sub(n)
	return nil
}

// SetQuantity sets the account's quantity of item to exactly n,
// regardless of the previous balance.
func (l *Ledger) SetQuantity(namespace, id, item string, n Quantity) error {
	if n.IsNegative() {
		return fmt.Errorf("%w: cannot set quantity to %s", ErrNegativeAmount, n)
	}
	acc, err := l.account(namespace, id)
	if err != nil {
		return err
	}
	acc.Items[item] = n
	return nil
}

// Transfer moves n of item from sender to receiver within the same namespace.
//
// Both legs apply together or not at all: every precondition (sign, distinct
// accounts, both registered, sufficient balance, receiver balance staying in
// the int64 range) is checked before either inventory is touched, so a
// failure leaves both accounts exactly as they were. The combined quantity
// of item across the two accounts is conserved.
func (l *Ledger) Transfer(namespace, sender, receiver, item string, n Quantity) error {
	if n.IsNegative() {
		return fmt.Errorf("%w: cannot transfer %s", ErrNegativeAmount, n)
	}
	if sender == receiver {
		return fmt.Errorf("%w: %s/%s", ErrSameAccount, namespace, sender)
	}
	from, err := l.account(namespace, sender)
	if err != nil {
		return err
	}
	to, err := l.account(namespace, receiver)
	if err != nil {
		return err
	}
	balance := from.Items.Get(item)
	if balance.LessThan(n) {
		return fmt.Errorf("%w: %s/%s holds %s %q, want %s", ErrInsufficientBalance, namespace, sender, balance, item, n)
	}
	if n.IsZero() {
		return nil
	}
	credited := to.Items.Get(item).Add(n)
	if !credited.fitsInt64() {
		return fmt.Errorf("%w: balance of %q would leave the int64 range", ErrInvalidAmount, item)
	}
	from.Items[item] = balance.Sub(n)
	to.Items[item] = credited
	return nil
}

// GetQuantity returns the account's quantity of item, zero when the item
// was never deposited.
func (l *Ledger) GetQuantity(namespace, id, item string) (Quantity, error) {
	acc, err := l.account(namespace, id)
	if err != nil {
		return Quantity{}, err
	}
	return acc.Items.Get(item), nil
}

// ListInventory returns an iterator over the account's (item, quantity)
// pairs in ascending item-name order.
func (l *Ledger) ListInventory(namespace, id string) (iter.Seq2[string, Quantity], error) {
	acc, err := l.account(namespace, id)
	if err != nil {
		return nil, err
	}
	return acc.Items.Items(), nil
}

// ListAccounts returns an iterator over the accounts of a namespace in
// ascending id order. Each yielded account is a snapshot.
func (l *Ledger) ListAccounts(namespace string) iter.Seq[Account] {
	return func(yield func(Account) bool) {
		accounts := l.namespaces[namespace]
		for _, id := range slices.Sorted(maps.Keys(accounts)) {
			if !yield(accounts[id].snapshot()) {
				return
			}
		}
	}
}

// ListAllAccounts returns an iterator over every account in the ledger,
// ordered by namespace id then account id. It does not know whether a
// namespace still exists in any external directory; filtering is the
// caller's concern.
func (l *Ledger) ListAllAccounts() iter.Seq2[string, Account] {
	return func(yield func(string, Account) bool) {
		for _, namespace := range slices.Sorted(maps.Keys(l.namespaces)) {
			accounts := l.namespaces[namespace]
			for _, id := range slices.Sorted(maps.Keys(accounts)) {
				if !yield(namespace, accounts[id].snapshot()) {
					return
				}
			}
		}
	}
}

// WipeNamespace unconditionally removes every account of the namespace.
// The namespace itself remains, as an empty record. Other namespaces are
// unaffected. Any confirmation logic belongs to the caller.
func (l *Ledger) WipeNamespace(namespace string) {
	l.namespaces[namespace] = make(map[string]*Account)
}
