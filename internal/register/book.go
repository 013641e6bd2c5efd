package register

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bcheck-dev/bcheck/internal/model"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("duplicate record id")
)

// Book provides in-memory lookup over a loaded register.
type Book struct {
	records model.Register
	byID    map[string]int
}

// NewBook indexes records. When ids repeat, lookups find the first one.
func NewBook(records model.Register) *Book {
	byID := make(map[string]int, len(records))
	for i, r := range records {
		if _, ok := byID[r.ID]; !ok {
			byID[r.ID] = i
		}
	}
	return &Book{records: records, byID: byID}
}

// All returns every record in register order.
func (b *Book) All() model.Register {
	return b.records
}

// Get returns a record by id.
func (b *Book) Get(recordID string) (model.Record, bool) {
	i, ok := b.byID[recordID]
	if !ok {
		return model.Record{}, false
	}
	return b.records[i], true
}

// Exists reports whether a record id is present.
func (b *Book) Exists(recordID string) bool {
	_, ok := b.byID[recordID]
	return ok
}

// Add appends a record, refusing an id that is already present.
func (b *Book) Add(r model.Record) error {
	if b.Exists(r.ID) {
		return fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
	}
	b.byID[r.ID] = len(b.records)
	b.records = append(b.records, r)
	return nil
}

// Reconcile marks a record's transaction as reconciled.
func (b *Book) Reconcile(recordID string) error {
	i, ok := b.byID[recordID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, recordID)
	}
	b.records[i].Transaction.IsReconciled = true
	return nil
}

// ByCategory returns records filed under category. An empty category
// matches records that have none.
func (b *Book) ByCategory(category string) []model.Record {
	return b.filter(func(r model.Record) bool {
		if r.Transaction.Category == nil {
			return category == ""
		}
		return *r.Transaction.Category == category
	})
}

// ByVendor returns records whose vendor matches, ignoring case.
func (b *Book) ByVendor(vendor string) []model.Record {
	return b.filter(func(r model.Record) bool {
		return strings.EqualFold(r.Transaction.Vendor, vendor)
	})
}

// Unreconciled returns records not yet matched against a statement.
func (b *Book) Unreconciled() []model.Record {
	return b.filter(func(r model.Record) bool {
		return !r.Transaction.IsReconciled
	})
}

func (b *Book) filter(keep func(model.Record) bool) []model.Record {
	var result []model.Record
	for _, r := range b.records {
		if keep(r) {
			result = append(result, r)
		}
	}
	return result
}
