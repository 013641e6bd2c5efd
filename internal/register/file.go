package register

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bcheck-dev/bcheck/internal/model"
)

// Format names an on-disk register encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTSV  Format = "tsv"
)

// ParseFormat accepts "json", "bcheck" or "tsv" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "bcheck":
		return FormatJSON, nil
	case "tsv":
		return FormatTSV, nil
	default:
		return "", fmt.Errorf("unknown register format %q", s)
	}
}

// FormatForPath picks TSV for .tsv and .txt files and JSON for anything
// else, .bcheck included.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".txt":
		return FormatTSV
	default:
		return FormatJSON
	}
}

// Encode renders records in this format.
func (f Format) Encode(records []model.Record) ([]byte, error) {
	switch f {
	case FormatTSV:
		return []byte(EncodeTSV(records)), nil
	case FormatJSON:
		return EncodeJSON(records)
	default:
		return nil, fmt.Errorf("unknown register format %q", string(f))
	}
}

// Decode parses data in this format. TSV decoding is lenient.
func (f Format) Decode(data []byte) ([]model.Record, error) {
	switch f {
	case FormatTSV:
		return DecodeTSV(string(data)), nil
	case FormatJSON:
		return DecodeJSON(data)
	default:
		return nil, fmt.Errorf("unknown register format %q", string(f))
	}
}

// Save writes records to path as JSON, replacing any existing file.
func Save(path string, records []model.Record) error {
	data, err := EncodeJSON(records)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// SaveTSV writes records to path as TSV, replacing any existing file.
func SaveTSV(path string, records []model.Record) error {
	return writeFile(path, []byte(EncodeTSV(records)))
}

// Load reads a .bcheck (JSON) register from path.
func Load(path string) ([]model.Record, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeJSON(data)
}

// LoadTSV reads a TSV register from path. Malformed rows are decoded
// leniently; only I/O errors are returned.
func LoadTSV(path string) ([]model.Record, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeTSV(string(data)), nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading register: %w", err)
	}
	return data, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing register: %w", err)
	}
	return nil
}
