package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bcheck-dev/bcheck/internal/model"
)

type addOptions struct {
	date       string
	check      uint32
	category   string
	vendor     string
	memo       string
	amount     string
	kind       string
	reconciled bool
}

func newAddCommand(flags *globalFlags) *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a transaction to the register",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := opts.record(cmd)
			if err != nil {
				return err
			}
			s, err := flags.open(cmd)
			if err != nil {
				return err
			}
			if err := s.store.Append(rec); err != nil {
				return err
			}
			printf(cmd, "%s\n", rec.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.date, "date", "", "transaction date YYYY-MM-DD (default now)")
	f.Uint32Var(&opts.check, "check", 0, "check number")
	f.StringVar(&opts.category, "category", "", "category")
	f.StringVar(&opts.vendor, "vendor", "", "payee or payer (required)")
	f.StringVar(&opts.memo, "memo", "", "memo")
	f.StringVar(&opts.amount, "amount", "", "non-negative amount (required)")
	f.StringVar(&opts.kind, "type", "withdrawal", "deposit or withdrawal")
	f.BoolVar(&opts.reconciled, "reconciled", false, "mark as reconciled")
	_ = cmd.MarkFlagRequired("vendor")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func (o addOptions) record(cmd *cobra.Command) (model.Record, error) {
	amount, err := decimal.NewFromString(o.amount)
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing amount %q: %w", o.amount, err)
	}
	kind, err := model.ParseTransactionType(o.kind)
	if err != nil {
		return model.Record{}, err
	}

	p := model.TransactionParams{
		Vendor:     o.vendor,
		Memo:       o.memo,
		Amount:     amount,
		Type:       kind,
		Reconciled: o.reconciled,
	}
	if cmd.Flags().Changed("date") {
		p.Date = model.Ptr(o.date)
	}
	if cmd.Flags().Changed("check") {
		p.CheckNumber = model.Ptr(o.check)
	}
	if cmd.Flags().Changed("category") {
		p.Category = model.Ptr(o.category)
	}

	txn, err := model.NewTransaction(p)
	if err != nil {
		return model.Record{}, err
	}
	return model.NewRecord("", txn), nil
}
