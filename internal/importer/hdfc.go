package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// HDFCParser parses statements whose header names the columns
// "Date", "Narration" and "Withdrawal Amt.". Other columns are ignored and
// column order does not matter.
type HDFCParser struct{}

const (
	hdfcColDate       = "Date"
	hdfcColNarration  = "Narration"
	hdfcColWithdrawal = "Withdrawal Amt."
)

// Format returns the parser name.
func (p *HDFCParser) Format() string { return "hdfc" }

// Parse reads the statement and returns one StatementRow per data row.
// Quotes are read leniently. On a malformed line the rows before it are
// returned along with the error.
func (p *HDFCParser) Parse(r io.Reader) ([]model.StatementRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("statement has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		cols[strings.TrimSpace(name)] = i
	}
	for _, want := range []string{hdfcColDate, hdfcColNarration, hdfcColWithdrawal} {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("statement is missing column %q", want)
		}
	}

	var rows []model.StatementRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, fmt.Errorf("reading statement CSV: %w", err)
		}
		rows = append(rows, model.StatementRow{
			Date:       field(rec, cols[hdfcColDate]),
			Narration:  field(rec, cols[hdfcColNarration]),
			Withdrawal: field(rec, cols[hdfcColWithdrawal]),
		})
	}
}

// field returns rec[i], or "" for short rows.
func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}
