// Package importer turns bank exports into register records.
package importer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/bcheck-dev/bcheck/internal/model"
)

// Parser reads one bank's CSV export.
type Parser interface {
	Parse(r io.Reader) ([]model.BankTransaction, error)
	Format() string
}

// Registry maps lowercase format names to parsers.
type Registry map[string]Parser

// ErrUnknownFormat is returned by Lookup for a format with no parser.
var ErrUnknownFormat = errors.New("unknown import format")

// DefaultRegistry returns the built-in parsers.
func DefaultRegistry() Registry {
	r := Registry{}
	_ = r.Add(&ChaseParser{})
	return r
}

// Add registers p under its format name, refusing a name already taken.
func (r Registry) Add(p Parser) error {
	name := strings.ToLower(p.Format())
	if _, taken := r[name]; taken {
		return fmt.Errorf("parser for %q already registered", name)
	}
	r[name] = p
	return nil
}

// Lookup finds the parser for format, ignoring case.
func (r Registry) Lookup(format string) (Parser, error) {
	if p, ok := r[strings.ToLower(format)]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownFormat, format, strings.Join(r.Formats(), ", "))
}

// Formats lists the registered format names in order.
func (r Registry) Formats() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ArchiveDir is the subdirectory of an inbox that imported statements move to.
const ArchiveDir = "processed"

// Statement is a bank export waiting in an inbox.
type Statement struct {
	Name     string
	Path     string
	Modified time.Time
}

// Inbox is the directory bank statements are dropped into before import.
type Inbox struct {
	dir string
}

// NewInbox returns the inbox rooted at dir.
func NewInbox(dir string) Inbox {
	return Inbox{dir: dir}
}

// Dir returns the inbox directory.
func (in Inbox) Dir() string {
	return in.dir
}

// Pending lists the CSV statements in the inbox, oldest first so records
// land in the register in statement order. A missing inbox is empty.
func (in Inbox) Pending() ([]Statement, error) {
	entries, err := os.ReadDir(in.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading inbox: %w", err)
	}

	var pending []Statement
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("reading inbox: %w", err)
		}
		pending = append(pending, Statement{
			Name:     e.Name(),
			Path:     filepath.Join(in.dir, e.Name()),
			Modified: info.ModTime(),
		})
	}

	slices.SortStableFunc(pending, func(a, b Statement) int {
		if c := a.Modified.Compare(b.Modified); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return pending, nil
}

// Archive moves an imported statement into the archive directory and
// returns its new path. A name already archived gets a numeric suffix
// rather than overwriting the earlier statement.
func (in Inbox) Archive(s Statement) (string, error) {
	archive := filepath.Join(in.dir, ArchiveDir)
	if err := os.MkdirAll(archive, 0o755); err != nil {
		return "", fmt.Errorf("creating archive: %w", err)
	}

	ext := filepath.Ext(s.Name)
	base := strings.TrimSuffix(s.Name, ext)
	dst := filepath.Join(archive, s.Name)
	for n := 1; ; n++ {
		if _, err := os.Stat(dst); errors.Is(err, os.ErrNotExist) {
			break
		}
		dst = filepath.Join(archive, base+"-"+strconv.Itoa(n)+ext)
	}

	if err := os.Rename(s.Path, dst); err != nil {
		return "", fmt.Errorf("archiving statement %s: %w", s.Name, err)
	}
	return dst, nil
}

// ParseFile opens path and runs it through p.
func ParseFile(p Parser, path string) ([]model.BankTransaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	txns, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return txns, nil
}
