package model

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Register is an ordered slice of records. Position i is treated as the
// entry after position i-1, which lets balances be computed by walking the
// slice instead of following Previous links.
type Register []Record

// Link points each record's Previous at the record before it in the
// slice. The links refer to the slice's backing array, so relink after
// appending to or reordering the register.
func (g Register) Link() {
	for i := range g {
		if i == 0 {
			g[i].Previous = nil
			continue
		}
		g[i].Previous = &g[i-1]
	}
}

// Unlink clears every Previous link.
func (g Register) Unlink() {
	for i := range g {
		g[i].Previous = nil
	}
}

// Balances returns the running balance after each record in slice order.
// On a linked register, Balances()[i] equals g[i].Balance().
func (g Register) Balances() []decimal.Decimal {
	out := make([]decimal.Decimal, len(g))
	total := decimal.Zero
	for i, r := range g {
		total = total.Add(r.Transaction.Signed())
		out[i] = total
	}
	return out
}

// Balance returns the balance after the last record.
func (g Register) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, r := range g {
		total = total.Add(r.Transaction.Signed())
	}
	return total
}

// SortByDate orders the register chronologically, breaking ties with
// Record.Compare, and clears any links.
func (g Register) SortByDate() {
	slices.SortStableFunc(g, func(a, b Record) int {
		if c := a.Transaction.Date.Compare(b.Transaction.Date); c != 0 {
			return c
		}
		return a.Compare(b)
	})
	g.Unlink()
}

// Sort orders the register by Record.Compare and clears any links.
func (g Register) Sort() {
	slices.SortFunc(g, Record.Compare)
	g.Unlink()
}

// Index returns the position of the record with the given id, or -1.
func (g Register) Index(recordID string) int {
	return slices.IndexFunc(g, func(r Record) bool { return r.ID == recordID })
}
