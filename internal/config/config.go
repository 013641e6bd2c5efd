package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up when --config is not given.
const DefaultFile = "bcheck.yaml"

// Config represents the top-level bcheck.yaml configuration.
type Config struct {
	Register RegisterConfig `yaml:"register"`
	Log      LogConfig      `yaml:"log"`
	Import   ImportConfig   `yaml:"import"`

	dir string // directory of the loaded file; relative paths resolve here
}

// RegisterConfig locates the register file.
type RegisterConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format,omitempty"` // json | tsv; empty = by extension
	Strict bool   `yaml:"strict,omitempty"` // reject malformed TSV rows
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ImportConfig controls bank CSV imports.
type ImportConfig struct {
	Dir             string `yaml:"dir"`
	DefaultCategory string `yaml:"default_category,omitempty"`
}

// Load reads a bcheck.yaml file from disk. A missing file yields Default().
// Relative paths in the result resolve against the file's directory.
func Load(path string) (*Config, error) {
	path = ExpandPath(path)
	cfg := Default()
	cfg.dir = filepath.Dir(path)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(ExpandPath(path), data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Register: RegisterConfig{
			Path: "transactions.bcheck",
		},
		Log: LogConfig{
			Level: "info",
		},
		Import: ImportConfig{
			Dir: "import",
		},
	}
}

// RegisterPath returns the expanded register path.
func (c *Config) RegisterPath() string {
	return c.resolve(c.Register.Path)
}

// ImportDir returns the expanded import directory.
func (c *Config) ImportDir() string {
	return c.resolve(c.Import.Dir)
}

func (c *Config) resolve(path string) string {
	path = ExpandPath(path)
	if path == "" || filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}

// ExpandPath expands a leading ~ and $VAR references in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
