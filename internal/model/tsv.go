package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bcheck-dev/bcheck/internal/date"
)

// Transaction columns in a TSV row. Deposits fill colDeposit and leave
// colWithdrawal empty; withdrawals do the opposite.
const (
	numTxnFields  = 8
	colDate       = 0
	colCheck      = 1
	colReconciled = 2
	colCategory   = 3
	colVendor     = 4
	colMemo       = 5
	colDeposit    = 6
	colWithdrawal = 7
)

const (
	reconciledYes = "Y"
	reconciledNo  = "N"
)

// MarshalTSV converts a Transaction to its TSV columns.
func (t Transaction) MarshalTSV() []string {
	row := make([]string, numTxnFields)
	row[colDate] = date.Format(t.Date)
	if t.CheckNumber != nil {
		row[colCheck] = strconv.FormatUint(uint64(*t.CheckNumber), 10)
	}
	row[colReconciled] = reconciledNo
	if t.IsReconciled {
		row[colReconciled] = reconciledYes
	}
	if t.Category != nil {
		row[colCategory] = *t.Category
	}
	row[colVendor] = t.Vendor
	row[colMemo] = t.Memo

	if t.Type == Deposit {
		row[colDeposit] = t.Amount.StringFixed(2)
	} else {
		row[colWithdrawal] = t.Amount.StringFixed(2)
	}
	return row
}

// String renders the transaction as a TSV row.
// A deposit ends in a tab; a withdrawal ends in its amount.
func (t Transaction) String() string {
	return strings.Join(t.MarshalTSV(), "\t")
}

// ParseTransaction reads a TSV row without failing. Columns that do not
// parse fall back: the date to now, the check number to absent, the amount
// to zero. Missing trailing columns read as empty.
func ParseTransaction(s string) Transaction {
	txn, _ := unmarshalTSV(strings.Split(s, "\t"), false)
	return txn
}

// ParseTransactionStrict reads a TSV row and reports every column that
// ParseTransaction would have defaulted.
func ParseTransactionStrict(s string) (Transaction, error) {
	return unmarshalTSV(strings.Split(s, "\t"), true)
}

func unmarshalTSV(fields []string, strict bool) (Transaction, error) {
	if strict && len(fields) != numTxnFields {
		return Transaction{}, fmt.Errorf("expected %d fields, got %d", numTxnFields, len(fields))
	}
	col := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	var errs []error

	when, err := date.Parse(col(colDate))
	if err != nil {
		errs = append(errs, fmt.Errorf("parsing date %q: %w", col(colDate), err))
		when = now()
	}

	var check *uint32
	if s := col(colCheck); s != "" {
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			errs = append(errs, fmt.Errorf("parsing check number %q: %w", s, err))
		} else {
			check = Ptr(uint32(n))
		}
	}

	flag := col(colReconciled)
	if flag != reconciledYes && flag != reconciledNo {
		errs = append(errs, fmt.Errorf("reconciled flag %q is neither %s nor %s", flag, reconciledYes, reconciledNo))
	}

	var category *string
	if s := col(colCategory); s != "" {
		category = Ptr(s)
	}

	txnType := Withdrawal
	amountText := col(colWithdrawal)
	if deposit := col(colDeposit); deposit != "" {
		txnType = Deposit
		amountText = deposit
		if col(colWithdrawal) != "" {
			errs = append(errs, errors.New("both deposit and withdrawal amounts are set"))
		}
	}
	amount, err := parseAmount(amountText)
	if err != nil {
		errs = append(errs, err)
		amount = decimal.Zero
	}

	txn := Transaction{
		Date:         when,
		CheckNumber:  check,
		Category:     category,
		Vendor:       col(colVendor),
		Memo:         col(colMemo),
		Amount:       amount,
		Type:         txnType,
		IsReconciled: flag == reconciledYes,
	}
	if strict && len(errs) > 0 {
		return Transaction{}, errors.Join(errs...)
	}
	return txn, errors.Join(errs...)
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, errors.New("missing amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNegativeAmount, s)
	}
	return d, nil
}
