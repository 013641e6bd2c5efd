package model

import (
	"bytes"
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bcheck-dev/bcheck/internal/date"
)

// ErrNegativeAmount is returned when a transaction amount is below zero.
// Direction is carried by TransactionType, never by the sign.
var ErrNegativeAmount = errors.New("amount must not be negative")

// now is swapped out in tests.
var now = time.Now

// Transaction is a single entry in a check register.
type Transaction struct {
	Date         time.Time
	CheckNumber  *uint32
	Category     *string // nil is distinct from ""
	Vendor       string
	Memo         string
	Amount       decimal.Decimal // always >= 0
	Type         TransactionType
	IsReconciled bool
}

// TransactionParams holds the inputs to NewTransaction.
type TransactionParams struct {
	Date        *string // YYYY-MM-DD; nil means the current moment
	CheckNumber *uint32
	Category    *string
	Vendor      string
	Memo        string
	Amount      decimal.Decimal
	Type        TransactionType
	Reconciled  bool
}

// Ptr returns a pointer to v, for filling optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// NewTransaction validates params and builds a Transaction. A non-nil date
// resolves to local midnight; a nil date takes the current moment as-is.
func NewTransaction(p TransactionParams) (Transaction, error) {
	when := now()
	if p.Date != nil {
		parsed, err := date.Parse(*p.Date)
		if err != nil {
			return Transaction{}, err
		}
		when = parsed
	}
	if p.Amount.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: %s", ErrNegativeAmount, p.Amount)
	}
	return Transaction{
		Date:         when,
		CheckNumber:  p.CheckNumber,
		Category:     p.Category,
		Vendor:       p.Vendor,
		Memo:         p.Memo,
		Amount:       p.Amount,
		Type:         p.Type,
		IsReconciled: p.Reconciled,
	}, nil
}

// BlankTransaction returns an empty withdrawal dated now.
func BlankTransaction() Transaction {
	return Transaction{
		Date:   now(),
		Amount: decimal.Zero,
		Type:   Withdrawal,
	}
}

// Signed returns the amount as it contributes to a balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Deposit {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Equal compares every field.
func (t Transaction) Equal(other Transaction) bool {
	return t.Compare(other) == 0
}

// Compare orders transactions field by field in declaration order. Absent
// optional values sort first.
func (t Transaction) Compare(other Transaction) int {
	if c := t.Date.Compare(other.Date); c != 0 {
		return c
	}
	if c := comparePtr(t.CheckNumber, other.CheckNumber); c != 0 {
		return c
	}
	if c := comparePtr(t.Category, other.Category); c != 0 {
		return c
	}
	if c := cmp.Compare(t.Vendor, other.Vendor); c != 0 {
		return c
	}
	if c := cmp.Compare(t.Memo, other.Memo); c != 0 {
		return c
	}
	if c := t.Amount.Cmp(other.Amount); c != 0 {
		return c
	}
	if c := t.Type.Compare(other.Type); c != 0 {
		return c
	}
	return compareBool(t.IsReconciled, other.IsReconciled)
}

func comparePtr[T cmp.Ordered](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(*a, *b)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// transactionJSON fixes the key order and omission rules of .bcheck files.
type transactionJSON struct {
	Date         string          `json:"date"`
	CheckNumber  *uint32         `json:"check_number,omitempty"`
	Category     *string         `json:"category,omitempty"`
	Vendor       string          `json:"vendor"`
	Memo         string          `json:"memo,omitempty"`
	Amount       json.Number     `json:"amount"`
	Type         TransactionType `json:"type"`
	IsReconciled bool            `json:"is_reconciled,omitempty"`
}

// transactionWire is the decode side; pointers mark fields that have
// defaults or are required.
type transactionWire struct {
	Date         *string          `json:"date"`
	CheckNumber  *uint32          `json:"check_number"`
	Category     *string          `json:"category"`
	Vendor       *string          `json:"vendor"`
	Memo         string           `json:"memo"`
	Amount       json.RawMessage  `json:"amount"`
	Type         *TransactionType `json:"type"`
	IsReconciled bool             `json:"is_reconciled"`
}

// MarshalJSON implements json.Marshaler.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return marshalUnescaped(transactionJSON{
		Date:         date.Format(t.Date),
		CheckNumber:  t.CheckNumber,
		Category:     t.Category,
		Vendor:       t.Vendor,
		Memo:         t.Memo,
		Amount:       floatNumber(t.Amount),
		Type:         t.Type,
		IsReconciled: t.IsReconciled,
	})
}

// floatNumber renders d the way BCheckbook writes amounts: always with a
// fractional part, so 500 is 500.0 and 200.5 stays 200.5.
func floatNumber(d decimal.Decimal) json.Number {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return json.Number(s)
}

// decodeAmount accepts a bare JSON number only. Missing or null is zero.
func decodeAmount(raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return decimal.Zero, nil
	}
	if raw[0] == '"' {
		return decimal.Decimal{}, fmt.Errorf("amount must be a number, got string %s", raw)
	}
	amount, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("amount must be a number, got %s", raw)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrNegativeAmount, amount)
	}
	return amount, nil
}

// marshalUnescaped is json.Marshal without HTML escaping, so vendors like
// "Barnes & Noble" are written the way BCheckbook writes them.
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON implements json.Unmarshaler. A missing date defaults to
// now, a missing amount to zero.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var w transactionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Vendor == nil {
		return errors.New("missing field `vendor`")
	}
	if w.Type == nil {
		return errors.New("missing field `type`")
	}

	out := Transaction{
		Date:         now(),
		CheckNumber:  w.CheckNumber,
		Category:     w.Category,
		Vendor:       *w.Vendor,
		Memo:         w.Memo,
		Type:         *w.Type,
		IsReconciled: w.IsReconciled,
	}
	if w.Date != nil {
		parsed, err := date.Parse(*w.Date)
		if err != nil {
			return fmt.Errorf("parsing date %q: %w", *w.Date, err)
		}
		out.Date = parsed
	}
	amount, err := decodeAmount(w.Amount)
	if err != nil {
		return err
	}
	out.Amount = amount

	*t = out
	return nil
}
