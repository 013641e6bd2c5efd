package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bcheck-dev/bcheck/internal/register"
)

func newCheckCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the register",
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

			errs := register.ValidateRecords(records)
			for _, e := range errs {
				printf(cmd, "%s\n", e.Error())
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d problems found", len(errs))
			}
			printf(cmd, "OK: %d records\n", len(records))
			return nil
		},
	}
}
