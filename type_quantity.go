package stockpile

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity is a count of items in an inventory.
//
// It wraps a decimal value, but the ledger only ever stores whole,
// non-negative quantities in the int64 range: ParseQuantity enforces that
// contract at the input boundary, the ledger rejects mutations whose result
// would leave the range, and the decoder re-checks it on load.
// The zero value is zero.
type Quantity struct {
	value decimal.Decimal
}

// Q is a convenient factory for a Quantity from a constant.
func Q(n int64) Quantity { return Quantity{value: decimal.NewFromInt(n)} }

// ParseQuantity parses a user-supplied quantity.
//
// It returns ErrInvalidAmount for non-numeric, fractional or out-of-range
// input, and ErrNegativeAmount for a negative one.
func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if !d.IsInteger() {
		return Quantity{}, fmt.Errorf("%w: %q is not a whole number", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return Quantity{}, fmt.Errorf("%w: %q", ErrNegativeAmount, s)
	}
	if !d.BigInt().IsInt64() {
		return Quantity{}, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, s)
	}
	return Quantity{value: d}, nil
}

func (q Quantity) Add(o Quantity) Quantity  { return Quantity{value: q.value.Add(o.value)} }
func (q Quantity) Sub(o Quantity) Quantity  { return Quantity{value: q.value.Sub(o.value)} }
func (q Quantity) Equal(o Quantity) bool    { return q.value.Equal(o.value) }
func (q Quantity) LessThan(o Quantity) bool { return q.value.LessThan(o.value) }
func (q Quantity) IsZero() bool             { return q.value.IsZero() }
func (q Quantity) IsNegative() bool         { return q.value.IsNegative() }
func (q Quantity) String() string           { return q.value.String() }

// Int64 returns the quantity as an int64.
func (q Quantity) Int64() int64 { return q.value.IntPart() }

// fitsInt64 reports whether the value is within the int64 range.
func (q Quantity) fitsInt64() bool { return q.value.BigInt().IsInt64() }

// validate reports whether the quantity satisfies the ledger contract
// (whole, non-negative, int64 range). The decoder calls it on every
// persisted quantity.
func (q Quantity) validate() error {
	if !q.value.IsInteger() {
		return fmt.Errorf("%w: %s is not a whole number", ErrInvalidAmount, q.value)
	}
	if q.value.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, q.value)
	}
	if !q.value.BigInt().IsInt64() {
		return fmt.Errorf("%w: %s is out of range", ErrInvalidAmount, q.value)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	return q.value.UnmarshalJSON(data)
}
