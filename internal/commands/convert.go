package commands

import (
	"github.com/spf13/cobra"

	"github.com/bcheck-dev/bcheck/internal/register"
)

func newConvertCommand(flags *globalFlags) *cobra.Command {
	var toFormat string

	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Re-encode a register file (JSON <-> TSV)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd)
			if err != nil {
				return err
			}

			var inFormat, outFormat register.Format
			if flags.format != "" {
				if inFormat, err = register.ParseFormat(flags.format); err != nil {
					return err
				}
			}
			if toFormat != "" {
				if outFormat, err = register.ParseFormat(toFormat); err != nil {
					return err
				}
			}

			in := register.NewStore(register.StoreConfig{
				Path: args[0], Format: inFormat, Strict: s.cfg.Register.Strict, Logger: &s.log,
			})
			out := register.NewStore(register.StoreConfig{
				Path: args[1], Format: outFormat, Logger: &s.log,
			})

			records, err := in.Load()
			if err != nil {
				return err
			}
			if err := out.Save(records); err != nil {
				return err
			}
			printf(cmd, "Converted %d records: %s (%s) -> %s (%s)\n",
				len(records), in.Path(), in.Format(), out.Path(), out.Format())
			return nil
		},
	}

	cmd.Flags().StringVar(&toFormat, "to", "", "output format: json or tsv (default by extension)")

	return cmd
}
