package register

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bcheck-dev/bcheck/internal/model"
)

const indent = "  "

// DecodeError wraps a parser diagnostic for a register that could not be
// decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding register: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeJSON decodes a .bcheck document: a JSON array of records.
// Missing optional fields take their defaults.
func DecodeJSON(data []byte) ([]model.Record, error) {
	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return records, nil
}

// ReadJSON reads and decodes a whole .bcheck document from r.
func ReadJSON(r io.Reader) ([]model.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading register: %w", err)
	}
	return DecodeJSON(data)
}

// EncodeJSON renders records as a JSON array indented by two spaces, with
// no trailing newline. A nil slice encodes as [].
func EncodeJSON(records []model.Record) ([]byte, error) {
	if records == nil {
		records = []model.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encoding register: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteJSON encodes records and writes them to w.
func WriteJSON(w io.Writer, records []model.Record) error {
	data, err := EncodeJSON(records)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing register: %w", err)
	}
	return nil
}
