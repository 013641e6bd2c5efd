package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is one row of a bank's CSV export, before it becomes a
// register Record.
type BankTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = money out, positive = money in
	Type        string          // bank transaction type (ACH_DEBIT, CHECK_PAID, etc.)
	CheckNumber *uint32         // from the bank's check column, if any
}
