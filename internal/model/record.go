package model

import (
	"cmp"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bcheck-dev/bcheck/internal/id"
)

// Record is one entry in a check register: an identifier, its transaction,
// and an optional link to the entry before it.
//
// Previous is never serialized. Decoders leave it nil; linking records in
// chronological order is up to the caller (see Register.Link).
type Record struct {
	ID          string      `json:"id"`
	Transaction Transaction `json:"transaction"`
	Previous    *Record     `json:"-"`
}

// BlankRecord returns a record with a fresh id and a blank transaction.
func BlankRecord() Record {
	return Record{ID: id.New(), Transaction: BlankTransaction()}
}

// NewRecord wraps txn. An empty recordID is replaced with a fresh one;
// anything else is used verbatim.
func NewRecord(recordID string, txn Transaction) Record {
	return Record{ID: id.OrNew(recordID), Transaction: txn}
}

// NewLinkedRecord is NewRecord with a link to the preceding record.
func NewLinkedRecord(recordID string, txn Transaction, previous *Record) Record {
	r := NewRecord(recordID, txn)
	r.Previous = previous
	return r
}

// Balance is the running balance at this record: the balance of the
// previous record (zero if none) plus this transaction's signed amount.
// The chain must be finite and acyclic.
func (r Record) Balance() decimal.Decimal {
	total := r.Transaction.Signed()
	for prev := r.Previous; prev != nil; prev = prev.Previous {
		total = total.Add(prev.Transaction.Signed())
	}
	return total
}

// Equal compares records by ID only. Two records with the same ID are the
// same register entry even if their transactions differ.
func (r Record) Equal(other Record) bool {
	return r.ID == other.ID
}

// Compare orders records by ID, then by transaction. Unlike Equal it looks
// at every serialized field, so it is not consistent with Equal.
func (r Record) Compare(other Record) int {
	if c := cmp.Compare(r.ID, other.ID); c != 0 {
		return c
	}
	return r.Transaction.Compare(other.Transaction)
}

// String renders the record as a TSV row: the id, then the transaction
// columns.
func (r Record) String() string {
	return r.ID + "\t" + r.Transaction.String()
}

// ParseRecord reads a TSV row the way ParseTransaction does. An empty id
// column gets a fresh id.
func ParseRecord(s string) Record {
	recordID, rest, _ := strings.Cut(s, "\t")
	return NewRecord(recordID, ParseTransaction(rest))
}

// ParseRecordStrict reads a TSV row, failing on any malformed column.
func ParseRecordStrict(s string) (Record, error) {
	recordID, rest, found := strings.Cut(s, "\t")
	if !found {
		return Record{}, errors.New("missing transaction columns")
	}
	txn, err := ParseTransactionStrict(rest)
	if err != nil {
		return Record{}, err
	}
	return NewRecord(recordID, txn), nil
}

type recordWire struct {
	ID          *string      `json:"id"`
	Transaction *Transaction `json:"transaction"`
}

// UnmarshalJSON implements json.Unmarshaler. A missing id is generated;
// an id that is present is kept verbatim, even when empty.
func (r *Record) UnmarshalJSON(data []byte) error {
	var w recordWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Transaction == nil {
		return errors.New("missing field `transaction`")
	}
	if w.ID == nil {
		*r = NewRecord("", *w.Transaction)
		return nil
	}
	*r = Record{ID: *w.ID, Transaction: *w.Transaction}
	return nil
}
