package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bcheck-dev/bcheck/internal/config"
)

func newInitCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a config file and an empty register",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, flags)
		},
	}
}

func runInit(cmd *cobra.Command, flags *globalFlags) error {
	cfgPath := config.ExpandPath(flags.configPath)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	s, err := flags.open(cmd)
	if err != nil {
		return err
	}

	if err := config.Save(cfgPath, s.cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(s.cfg.ImportDir(), 0o755); err != nil {
		return fmt.Errorf("creating import dir: %w", err)
	}

	switch _, err := os.Stat(s.store.Path()); {
	case err == nil:
		s.log.Info().Str("path", s.store.Path()).Msg("keeping existing register")
	case errors.Is(err, fs.ErrNotExist):
		if err := s.store.Save(nil); err != nil {
			return err
		}
	default:
		return fmt.Errorf("checking register: %w", err)
	}

	printf(cmd, "Initialized %s (register %s, %s)\n", cfgPath, s.store.Path(), s.store.Format())
	return nil
}
