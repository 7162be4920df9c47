package stockpile

import "fmt"

// Op identifies how a parsed amount directive applies to an inventory.
type Op int

const (
	// OpSet replaces the current quantity with the magnitude.
	OpSet Op = iota
	// OpDeposit adds the magnitude to the current quantity.
	OpDeposit
	// OpWithdraw subtracts the magnitude from the current quantity.
	OpWithdraw
)

func (o Op) String() string {
	switch o {
	case OpSet:
		return "set"
	case OpDeposit:
		return "deposit"
	case OpWithdraw:
		return "withdraw"
	default:
		return "unknown"
	}
}

// Directive is a parsed (operation, magnitude) pair derived from a signed or
// unsigned textual amount: "+N" deposits, "-N" withdraws, a bare "N" sets
// the quantity to N.
type Directive struct {
	Op       Op
	Quantity Quantity
}

// ParseDirective parses a textual amount directive.
//
// A leading '+' or '-' selects deposit or withdraw; the remainder must be a
// positive integer, since a signed zero carries no intent. Without a sign the
// whole input must be digits and sets the quantity absolutely, zero included.
// Everything else fails with ErrInvalidDirective.
func ParseDirective(s string) (Directive, error) {
	if s == "" {
		return Directive{}, fmt.Errorf("%w: empty input", ErrInvalidDirective)
	}
	switch s[0] {
	case '+', '-':
		magnitude := s[1:]
		if !allDigits(magnitude) {
			return Directive{}, fmt.Errorf("%w: %q", ErrInvalidDirective, s)
		}
		n, err := ParseQuantity(magnitude)
		if err != nil {
			return Directive{}, fmt.Errorf("%w: %q", ErrInvalidDirective, s)
		}
		if n.IsZero() {
			return Directive{}, fmt.Errorf("%w: signed zero %q is ambiguous", ErrInvalidDirective, s)
		}
		op := OpDeposit
		if s[0] == '-' {
			op = OpWithdraw
		}
		return Directive{Op: op, Quantity: n}, nil
	default:
		if !allDigits(s) {
			return Directive{}, fmt.Errorf("%w: %q", ErrInvalidDirective, s)
		}
		n, err := ParseQuantity(s)
		if err != nil {
			return Directive{}, fmt.Errorf("%w: %q", ErrInvalidDirective, s)
		}
		return Directive{Op: OpSet, Quantity: n}, nil
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
