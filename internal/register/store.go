package register

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/bcheck-dev/bcheck/internal/model"
)

// StoreConfig holds the parameters for NewStore.
type StoreConfig struct {
	Path   string
	Format Format // empty = pick by extension
	Strict bool   // reject malformed TSV rows instead of defaulting them
	Logger *zerolog.Logger
}

// Store loads and saves one register file.
type Store struct {
	path   string
	format Format
	strict bool
	log    zerolog.Logger
}

// NewStore creates a Store for cfg.Path.
func NewStore(cfg StoreConfig) *Store {
	format := cfg.Format
	if format == "" {
		format = FormatForPath(cfg.Path)
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Store{
		path:   cfg.Path,
		format: format,
		strict: cfg.Strict,
		log:    log.With().Str("register", cfg.Path).Str("format", string(format)).Logger(),
	}
}

// Path returns the register file path.
func (s *Store) Path() string {
	return s.path
}

// Format returns the encoding the store reads and writes.
func (s *Store) Format() Format {
	return s.format
}

// Load reads the whole register. Records come back unlinked, in file order.
func (s *Store) Load() (model.Register, error) {
	data, err := readFile(s.path)
	if err != nil {
		return nil, err
	}

	var records []model.Record
	switch {
	case s.format == FormatTSV && s.strict:
		records, err = DecodeTSVStrict(string(data))
	case s.format == FormatTSV:
		records = decodeTSV(string(data), s.log)
	default:
		records, err = s.format.Decode(data)
	}
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int("records", len(records)).Msg("loaded register")
	return records, nil
}

// Save replaces the register file with records.
func (s *Store) Save(records []model.Record) error {
	data, err := s.format.Encode(records)
	if err != nil {
		return err
	}
	if err := writeFile(s.path, data); err != nil {
		return err
	}
	s.log.Debug().Int("records", len(records)).Msg("saved register")
	return nil
}

// Update loads the register (empty if the file does not exist yet), applies
// fn, and saves the result.
func (s *Store) Update(fn func(model.Register) (model.Register, error)) error {
	records, err := s.Load()
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info().Msg("register does not exist yet, starting empty")
		records, err = nil, nil
	}
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}
	return s.Save(updated)
}

// Append adds rec to the end of the register, refusing duplicate ids.
func (s *Store) Append(rec model.Record) error {
	return s.Update(func(g model.Register) (model.Register, error) {
		if g.Index(rec.ID) >= 0 {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, rec.ID)
		}
		return append(g, rec), nil
	})
}
