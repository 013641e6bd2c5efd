package model

import (
	"fmt"
	"strings"
)

// TransactionType is the direction of a transaction. Deposits sort before
// withdrawals.
type TransactionType int

const (
	Deposit TransactionType = iota
	Withdrawal
)

// TypeParseError reports text that names neither transaction type.
type TypeParseError struct {
	Text string // the rejected input; ParseTransactionType lowercases it
}

func (e *TypeParseError) Error() string {
	return fmt.Sprintf("%s is not a valid type", e.Text)
}

// ParseTransactionType matches "deposit" or "withdrawal" case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	lower := strings.ToLower(s)
	switch lower {
	case "deposit":
		return Deposit, nil
	case "withdrawal":
		return Withdrawal, nil
	default:
		return 0, &TypeParseError{Text: lower}
	}
}

func (t TransactionType) String() string {
	switch t {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	default:
		return fmt.Sprintf("TransactionType(%d)", int(t))
	}
}

// Compare orders types by declaration: Deposit < Withdrawal.
func (t TransactionType) Compare(other TransactionType) int {
	switch {
	case t < other:
		return -1
	case t > other:
		return 1
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t TransactionType) MarshalText() ([]byte, error) {
	if t != Deposit && t != Withdrawal {
		return nil, fmt.Errorf("invalid transaction type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike
// ParseTransactionType it only accepts the lowercase names written by
// MarshalText.
func (t *TransactionType) UnmarshalText(text []byte) error {
	switch s := string(text); s {
	case Deposit.String():
		*t = Deposit
	case Withdrawal.String():
		*t = Withdrawal
	default:
		return &TypeParseError{Text: s}
	}
	return nil
}
