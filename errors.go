package stockpile

import "errors"

// Every failure returned by the ledger is caller-recoverable and wraps one of
// these sentinels. Callers match with errors.Is and own any user-facing
// wording; the ledger itself never logs or formats messages for end users.
var (
	// ErrAccountExists reports a registration on an already registered account.
	ErrAccountExists = errors.New("account already exists")
	// ErrNoAccount reports an operation addressed at an absent (namespace, account) pair.
	ErrNoAccount = errors.New("no such account")
	// ErrNegativeAmount reports a negative quantity where only zero or more is meaningful.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrInvalidAmount reports a fractional, non-numeric or out-of-range quantity.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientBalance reports a withdrawal or transfer exceeding the available quantity.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrSameAccount reports a transfer whose sender and receiver are the same account.
	ErrSameAccount = errors.New("sender and receiver are the same account")
	// ErrInvalidDirective reports a malformed textual amount directive.
	ErrInvalidDirective = errors.New("invalid amount directive")
	// ErrCorruptStore reports a persisted document that does not match the expected shape.
	ErrCorruptStore = errors.New("corrupt ledger document")
)
