package importer

import (
	"fmt"

	"github.com/bcheck-dev/bcheck/internal/date"
	"github.com/bcheck-dev/bcheck/internal/model"
)

// Options controls how bank rows become register records.
type Options struct {
	Category string // filed on every imported record; empty = none
}

// ToRecords converts bank rows into unreconciled register records with
// fresh ids. Negative bank amounts become withdrawals.
func ToRecords(txns []model.BankTransaction, opts Options) []model.Record {
	records := make([]model.Record, 0, len(txns))
	for _, bt := range txns {
		t := model.Transaction{
			Date:        bt.Date,
			CheckNumber: bt.CheckNumber,
			Vendor:      bt.Description,
			Amount:      bt.Amount.Abs(),
			Type:        model.Deposit,
		}
		if bt.Amount.IsNegative() {
			t.Type = model.Withdrawal
		}
		if opts.Category != "" {
			t.Category = model.Ptr(opts.Category)
		}
		records = append(records, model.NewRecord("", t))
	}
	return records
}

// Deduplicate drops incoming records that match an existing record, or an
// earlier incoming one, on date, signed amount and vendor.
func Deduplicate(existing, incoming []model.Record) []model.Record {
	seen := make(map[string]bool, len(existing)+len(incoming))
	for _, r := range existing {
		seen[dedupKey(r)] = true
	}

	var fresh []model.Record
	for _, r := range incoming {
		key := dedupKey(r)
		if seen[key] {
			continue
		}
		seen[key] = true
		fresh = append(fresh, r)
	}
	return fresh
}

func dedupKey(r model.Record) string {
	return fmt.Sprintf("%s|%s|%s", date.Format(r.Transaction.Date), r.Transaction.Signed().StringFixed(2), r.Transaction.Vendor)
}
