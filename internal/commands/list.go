package commands

import (
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bcheck-dev/bcheck/internal/date"
	"github.com/bcheck-dev/bcheck/internal/model"
	"github.com/bcheck-dev/bcheck/internal/register"
)

type listOptions struct {
	category     string
	vendor       string
	unreconciled bool
	byDate       bool
}

func newListCommand(flags *globalFlags) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the register with running balances",
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
			return runList(cmd, records, opts)
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", "", "only records in this category")
	cmd.Flags().StringVar(&opts.vendor, "vendor", "", "only records from this vendor (case-insensitive)")
	cmd.Flags().BoolVar(&opts.unreconciled, "unreconciled", false, "only records not yet reconciled")
	cmd.Flags().BoolVar(&opts.byDate, "by-date", false, "order by transaction date instead of file order")

	return cmd
}

func runList(cmd *cobra.Command, records model.Register, opts listOptions) error {
	if opts.byDate {
		records.SortByDate()
	}

	// Balances run over the whole register; filters only hide rows.
	balances := records.Balances()
	show := make(map[string]bool, len(records))
	for _, r := range filterRecords(records, cmd, opts) {
		show[r.ID] = true
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = tw.Write([]byte("ID\tDATE\tCHECK\tR\tCATEGORY\tVENDOR\tAMOUNT\tBALANCE\n"))
	for i, r := range records {
		if !show[r.ID] {
			continue
		}
		t := r.Transaction
		check := ""
		if t.CheckNumber != nil {
			check = strconv.FormatUint(uint64(*t.CheckNumber), 10)
		}
		category := ""
		if t.Category != nil {
			category = *t.Category
		}
		reconciled := ""
		if t.IsReconciled {
			reconciled = "Y"
		}
		_, _ = tw.Write([]byte(r.ID + "\t" + date.Format(t.Date) + "\t" + check + "\t" + reconciled + "\t" +
			category + "\t" + t.Vendor + "\t" + t.Signed().StringFixed(2) + "\t" + balances[i].StringFixed(2) + "\n"))
	}
	return tw.Flush()
}

func filterRecords(records model.Register, cmd *cobra.Command, opts listOptions) []model.Record {
	book := register.NewBook(records)
	result := []model.Record(book.All())
	if cmd.Flags().Changed("category") {
		result = intersect(result, book.ByCategory(opts.category))
	}
	if opts.vendor != "" {
		result = intersect(result, book.ByVendor(opts.vendor))
	}
	if opts.unreconciled {
		result = intersect(result, book.Unreconciled())
	}
	return result
}

func intersect(a, b []model.Record) []model.Record {
	keep := make(map[string]bool, len(b))
	for _, r := range b {
		keep[r.ID] = true
	}
	var out []model.Record
	for _, r := range a {
		if keep[r.ID] {
			out = append(out, r)
		}
	}
	return out
}
