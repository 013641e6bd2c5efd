package commands

import (
	"github.com/spf13/cobra"

	"github.com/bcheck-dev/bcheck/internal/model"
	"github.com/bcheck-dev/bcheck/internal/register"
)

func newReconcileCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <id>...",
		Short: "Mark records as reconciled against a statement",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd)
			if err != nil {
				return err
			}
			err = s.store.Update(func(g model.Register) (model.Register, error) {
				book := register.NewBook(g)
				for _, id := range args {
					if err := book.Reconcile(id); err != nil {
						return nil, err
					}
				}
				return book.All(), nil
			})
			if err != nil {
				return err
			}
			printf(cmd, "Reconciled %d records\n", len(args))
			return nil
		},
	}
}
