package register

import (
	"fmt"

	"github.com/bcheck-dev/bcheck/internal/model"
)

// Rules checked by ValidateRecords.
const (
	RuleEmptyID        = "empty-id"
	RuleDuplicateID    = "duplicate-id"
	RuleNegativeAmount = "negative-amount"
	RuleUnknownType    = "unknown-type"
	RuleCyclicChain    = "cyclic-chain"
)

// ValidationError describes a single rule violation.
type ValidationError struct {
	Rule        string
	RecordID    string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Rule, e.RecordID, e.Description)
}

// ValidateRecords checks a register for violations the codecs cannot
// catch on their own: ids, amounts built outside NewTransaction, and
// Previous chains that loop back on themselves.
func ValidateRecords(records []model.Record) []ValidationError {
	var errs []ValidationError

	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if r.ID == "" {
			errs = append(errs, ValidationError{
				Rule:        RuleEmptyID,
				Description: "record has no id",
			})
		} else if seen[r.ID] {
			errs = append(errs, ValidationError{
				Rule:        RuleDuplicateID,
				RecordID:    r.ID,
				Description: "id appears more than once",
			})
		}
		seen[r.ID] = true

		if r.Transaction.Amount.IsNegative() {
			errs = append(errs, ValidationError{
				Rule:        RuleNegativeAmount,
				RecordID:    r.ID,
				Description: fmt.Sprintf("amount %s is negative", r.Transaction.Amount),
			})
		}

		if t := r.Transaction.Type; t != model.Deposit && t != model.Withdrawal {
			errs = append(errs, ValidationError{
				Rule:        RuleUnknownType,
				RecordID:    r.ID,
				Description: fmt.Sprintf("transaction type %d is neither deposit nor withdrawal", int(t)),
			})
		}
	}

	for i := range records {
		if cyclic(&records[i]) {
			errs = append(errs, ValidationError{
				Rule:        RuleCyclicChain,
				RecordID:    records[i].ID,
				Description: "previous-record chain loops back on itself",
			})
		}
	}

	return errs
}

// cyclic walks the chain from start with a tortoise and hare.
func cyclic(start *model.Record) bool {
	slow, fast := start, start
	for fast != nil && fast.Previous != nil {
		slow = slow.Previous
		fast = fast.Previous.Previous
		if slow == fast {
			return true
		}
	}
	return false
}
