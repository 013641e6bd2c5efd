package register

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bcheck-dev/bcheck/internal/model"
)

// LineEnding terminates every TSV row, whatever the platform.
const LineEnding = "\r\n"

type row struct {
	line int
	text string
}

// rows splits text into non-empty lines. Both \r\n and \n endings are
// accepted.
func rows(text string) []row {
	var out []row
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		out = append(out, row{line: i + 1, text: line})
	}
	return out
}

// EncodeTSV renders one row per record, each terminated by \r\n.
func EncodeTSV(records []model.Record) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(r.String())
		b.WriteString(LineEnding)
	}
	return b.String()
}

// DecodeTSV parses every non-empty line with model.ParseRecord. It never
// fails: malformed columns fall back to their defaults.
func DecodeTSV(text string) []model.Record {
	return decodeTSV(text, zerolog.Nop())
}

func decodeTSV(text string, log zerolog.Logger) []model.Record {
	var records []model.Record
	for _, r := range rows(text) {
		rec, err := model.ParseRecordStrict(r.text)
		if err != nil {
			log.Warn().Err(err).Int("line", r.line).Msg("row has malformed columns, using defaults")
			rec = model.ParseRecord(r.text)
		}
		records = append(records, rec)
	}
	return records
}

// DecodeTSVStrict parses every non-empty line and fails on the first row
// with a malformed column.
func DecodeTSVStrict(text string) ([]model.Record, error) {
	var records []model.Record
	for _, r := range rows(text) {
		rec, err := model.ParseRecordStrict(r.text)
		if err != nil {
			return nil, &DecodeError{Err: fmt.Errorf("line %d: %w", r.line, err)}
		}
		records = append(records, rec)
	}
	return records, nil
}
