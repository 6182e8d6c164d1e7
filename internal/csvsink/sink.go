package csvsink

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Sink accumulates one header plus one row per accepted charging session
// for the duration of a run. Rows from multiple input files interleave in
// the order the files and sessions were visited. The file is produced by a
// single buffered write so a failed run never leaves a partial CSV behind.
type Sink struct {
	dialect Dialect
	header  []string
	rows    [][]string
}

// New returns an empty sink using the given dialect.
func New(dialect Dialect) *Sink {
	return &Sink{dialect: dialect}
}

// Dialect exposes the sink's dialect so row builders can format numbers
// consistently with the delimiter choice.
func (s *Sink) Dialect() Dialect { return s.dialect }

// SetHeader records the header row. Only the first call per sink takes
// effect; later calls (one per session) are no-ops.
func (s *Sink) SetHeader(header []string) {
	if s.header == nil {
		s.header = append([]string(nil), header...)
	}
}

// Append adds one data row in visit order.
func (s *Sink) Append(row []string) {
	s.rows = append(s.rows, append([]string(nil), row...))
}

// Len reports the number of accumulated data rows.
func (s *Sink) Len() int { return len(s.rows) }

// Reset clears header and rows so the sink can be reused for an
// independent run without duplicating rows.
func (s *Sink) Reset() {
	s.header = nil
	s.rows = nil
}

// WriteFile serializes header and rows to path in one write.
func (s *Sink) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := s.serialize(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (s *Sink) serialize(buf *bytes.Buffer) error {
	records := make([][]string, 0, len(s.rows)+1)
	if s.header != nil {
		records = append(records, s.header)
	}
	records = append(records, s.rows...)

	if s.dialect.QuoteAll {
		for _, rec := range records {
			writeQuoted(buf, rec, s.dialect.Comma)
		}
		return nil
	}

	w := csv.NewWriter(buf)
	w.Comma = s.dialect.Comma
	w.UseCRLF = true
	if err := w.WriteAll(records); err != nil {
		return err
	}
	return w.Error()
}

// writeQuoted emits one record with every field quoted. encoding/csv only
// quotes fields that need it, which decimal-comma spreadsheet imports
// reject, so this dialect is serialized by hand.
func writeQuoted(buf *bytes.Buffer, rec []string, comma rune) {
	for i, field := range rec {
		if i > 0 {
			buf.WriteRune(comma)
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteString("\r\n")
}
