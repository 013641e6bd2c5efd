package commands

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bcheck-dev/bcheck/internal/model"
)

func newBalanceCommand(flags *globalFlags) *cobra.Command {
	var reconciledOnly bool

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Print the register balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd)
			if err != nil {
				return err
			}
			records, err := s.store.Load()
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", balanceOf(records, reconciledOnly).StringFixed(2))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reconciledOnly, "reconciled", false, "count only reconciled records")

	return cmd
}

// balanceOf links the register in file order and returns the last record's
// balance.
func balanceOf(records model.Register, reconciledOnly bool) decimal.Decimal {
	if reconciledOnly {
		var kept model.Register
		for _, r := range records {
			if r.Transaction.IsReconciled {
				kept = append(kept, r)
			}
		}
		records = kept
	}
	if len(records) == 0 {
		return decimal.Zero
	}
	records.Link()
	return records[len(records)-1].Balance()
}
