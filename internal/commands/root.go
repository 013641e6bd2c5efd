package commands

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bcheck-dev/bcheck/internal/buildinfo"
	"github.com/bcheck-dev/bcheck/internal/config"
	"github.com/bcheck-dev/bcheck/internal/logger"
	"github.com/bcheck-dev/bcheck/internal/register"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath   string
	registerPath string
	format       string
	logLevel     string
	strict       bool
}

// session is what a subcommand works with once flags and config are merged.
type session struct {
	cfg   *config.Config
	log   zerolog.Logger
	store *register.Store
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "bcheck",
		Short:   "Personal check register",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", config.DefaultFile, "config file")
	pf.StringVar(&flags.registerPath, "register", "", "register file (overrides config)")
	pf.StringVar(&flags.format, "format", "", "register format: json or tsv (default by extension)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (overrides config)")
	pf.BoolVar(&flags.strict, "strict", false, "reject malformed TSV rows")

	rootCmd.AddCommand(
		newInitCommand(flags),
		newListCommand(flags),
		newBalanceCommand(flags),
		newConvertCommand(flags),
		newAddCommand(flags),
		newReconcileCommand(flags),
		newCheckCommand(flags),
		newImportCommand(flags),
	)

	return rootCmd
}

// open loads config, applies flag overrides and builds the logger and store.
func (f *globalFlags) open(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.registerPath != "" {
		// Flag paths are relative to the working directory, not the config.
		abs, err := filepath.Abs(config.ExpandPath(f.registerPath))
		if err != nil {
			return nil, fmt.Errorf("resolving register path: %w", err)
		}
		cfg.Register.Path = abs
	}
	if f.format != "" {
		cfg.Register.Format = f.format
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.strict {
		cfg.Register.Strict = true
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	log := logger.NewConsole(cmd.ErrOrStderr(), level)

	var format register.Format
	if cfg.Register.Format != "" {
		format, err = register.ParseFormat(cfg.Register.Format)
		if err != nil {
			return nil, err
		}
	}

	store := register.NewStore(register.StoreConfig{
		Path:   cfg.RegisterPath(),
		Format: format,
		Strict: cfg.Register.Strict,
		Logger: &log,
	})

	cmd.SetContext(logger.WithContext(cmd.Context(), log))
	return &session{cfg: cfg, log: log, store: store}, nil
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
