package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// ChaseParser parses Chase bank checking CSV exports. Debits carry a
// negative Amount; they become withdrawals of the absolute value.
type ChaseParser struct{}

const (
	chaseNumFields = 7
	chaseColDate   = 1
	chaseColDesc   = 2
	chaseColAmount = 3
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV and returns StatementRows. On a bad line the
// rows before it are returned along with the error.
func (p *ChaseParser) Parse(r io.Reader) ([]model.StatementRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = chaseNumFields

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}

	var rows []model.StatementRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, fmt.Errorf("reading chase CSV: %w", err)
		}
		row, err := parseChaseRow(rec)
		if err != nil {
			return rows, fmt.Errorf("row %d: %w", line, err)
		}
		rows = append(rows, row)
	}
}

func parseChaseRow(rec []string) (model.StatementRow, error) {
	amount, err := decimal.NewFromString(rec[chaseColAmount])
	if err != nil {
		return model.StatementRow{}, fmt.Errorf("parsing amount %q: %w", rec[chaseColAmount], err)
	}

	row := model.StatementRow{
		Date:      rec[chaseColDate],
		Narration: rec[chaseColDesc],
	}
	if amount.IsNegative() {
		row.Withdrawal = amount.Neg().StringFixed(2)
	}
	return row, nil
}
