package stockpile

import (
	"fmt"
	"sync"
	"time"
)

// System couples a Ledger with the DocumentStore it is persisted to.
//
// It is the operation façade callers are expected to use: every mutating
// operation runs as one critical section under the system's mutex: mutate
// the in-memory ledger, then save the full document once. The mutex is the
// single serialization point required around the store; a System must be the
// sole writer of its document.
//
// In particular Transfer's two legs are applied and persisted as one
// transaction: a failure before the save leaves nothing applied, and there
// is never a persisted state holding only the withdrawal.
type System struct {
	mu     sync.Mutex
	ledger *Ledger
	store  DocumentStore
	now    func() time.Time
}

// NewSystem loads the store's document and returns a system operating on it.
func NewSystem(store DocumentStore) (*System, error) {
	ledger, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load ledger: %w", err)
	}
	return &System{ledger: ledger, store: store, now: time.Now}, nil
}

// persist saves the full ledger snapshot. Called after every successful
// mutation, with the mutex held.
func (s *System) persist() error {
	if err := s.store.Save(s.ledger); err != nil {
		return fmt.Errorf("could not persist ledger: %w", err)
	}
	return nil
}

// CreateAccount registers a new account stamped with the current UTC time
// and returns its snapshot.
func (s *System) CreateAccount(namespace, id, name string) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, err := s.ledger.CreateAccount(namespace, id, name, s.now())
	if err != nil {
		return Account{}, err
	}
	return acc, s.persist()
}

// AccountExists reports whether (namespace, id) is registered.
func (s *System) AccountExists(namespace, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.AccountExists(namespace, id)
}

// Deposit increments the account's quantity of item by n and persists.
func (s *System) Deposit(namespace, id, item string, n Quantity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ledger.Deposit(namespace, id, item, n); err != nil {
		return err
	}
	return s.persist()
}

// Withdraw decrements the account's quantity of item by n and persists.
func (s *System) Withdraw(namespace, id, item string, n Quantity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ledger.Withdraw(namespace, id, item, n); err != nil {
		return err
	}
	return s.persist()
}

// SetQuantity sets the account's quantity of item to exactly n and persists.
func (s *System) SetQuantity(namespace, id, item string, n Quantity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ledger.SetQuantity(namespace, id, item, n); err != nil {
		return err
	}
	return s.persist()
}

// Transfer moves n of item from sender to receiver and persists once.
func (s *System) Transfer(namespace, sender, receiver, item string, n Quantity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ledger.Transfer(namespace, sender, receiver, item, n); err != nil {
		return err
	}
	return s.persist()
}

// Apply executes a parsed amount directive against the account's item.
func (s *System) Apply(namespace, id, item string, d Directive) error {
	switch d.Op {
	case OpDeposit:
		return s.Deposit(namespace, id, item, d.Quantity)
	case OpWithdraw:
		return s.Withdraw(namespace, id, item, d.Quantity)
	case OpSet:
		return s.SetQuantity(namespace, id, item, d.Quantity)
	default:
		return fmt.Errorf("%w: unknown operation %v", ErrInvalidDirective, d.Op)
	}
}

// GetQuantity returns the account's quantity of item.
func (s *System) GetQuantity(namespace, id, item string) (Quantity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.GetQuantity(namespace, id, item)
}

// ListInventory returns the account's (item, quantity) pairs sorted by
// item name.
func (s *System) ListInventory(namespace, id string) ([]ItemCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq, err := s.ledger.ListInventory(namespace, id)
	if err != nil {
		return nil, err
	}
	var items []ItemCount
	for item, n := range seq {
		items = append(items, ItemCount{Item: item, Quantity: n})
	}
	return items, nil
}

// ListAccounts returns the accounts of a namespace sorted by id.
func (s *System) ListAccounts(namespace string) []Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	var accounts []Account
	for acc := range s.ledger.ListAccounts(namespace) {
		accounts = append(accounts, acc)
	}
	return accounts
}

// ListAllAccounts returns every account in the ledger, ordered by namespace
// id then account id.
func (s *System) ListAllAccounts() []NamespaceAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	var accounts []NamespaceAccount
	for namespace, acc := range s.ledger.ListAllAccounts() {
		accounts = append(accounts, NamespaceAccount{Namespace: namespace, Account: acc})
	}
	return accounts
}

// WipeNamespace removes every account of the namespace and persists.
func (s *System) WipeNamespace(namespace string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.WipeNamespace(namespace)
	return s.persist()
}
