package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bcheck-dev/bcheck/internal/importer"
	"github.com/bcheck-dev/bcheck/internal/logger"
	"github.com/bcheck-dev/bcheck/internal/model"
)

func newImportCommand(flags *globalFlags) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "import <format> [csv...]",
		Short: "Import bank CSV exports into the register",
		Long: "Import bank CSV exports into the register. With no files, every CSV in\n" +
			"the configured import directory is imported, oldest first, and moved to processed/.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := importer.DefaultRegistry().Lookup(args[0])
			if err != nil {
				return err
			}

			s, err := flags.open(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("category") {
				category = s.cfg.Import.DefaultCategory
			}

			inbox := importer.NewInbox(s.cfg.ImportDir())
			var pending []importer.Statement
			paths := args[1:]
			if len(paths) == 0 {
				if pending, err = inbox.Pending(); err != nil {
					return err
				}
				for _, st := range pending {
					paths = append(paths, st.Path)
				}
			}

			var added int
			err = s.store.Update(func(g model.Register) (model.Register, error) {
				for _, path := range paths {
					fresh, err := importFile(cmd.Context(), parser, path, g, category)
					if err != nil {
						return nil, err
					}
					g = append(g, fresh...)
					added += len(fresh)
				}
				return g, nil
			})
			if err != nil {
				return err
			}

			for _, st := range pending {
				dst, err := inbox.Archive(st)
				if err != nil {
					return err
				}
				s.log.Debug().Str("statement", st.Name).Str("archived", dst).Msg("archived statement")
			}

			printf(cmd, "Imported %d records from %d files\n", added, len(paths))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category for imported records (default from config)")

	return cmd
}

func importFile(ctx context.Context, p importer.Parser, path string, existing model.Register, category string) ([]model.Record, error) {
	log := logger.FromContext(ctx)

	txns, err := importer.ParseFile(p, path)
	if err != nil {
		return nil, err
	}
	incoming := importer.ToRecords(txns, importer.Options{Category: category})
	fresh := importer.Deduplicate(existing, incoming)

	log.Info().
		Str("file", path).
		Int("rows", len(txns)).
		Int("skipped", len(incoming)-len(fresh)).
		Msg("imported bank export")
	return fresh, nil
}
