package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/spendlog-dev/spendlog/internal/id"
	"github.com/spendlog-dev/spendlog/internal/model"
)

// Header is the first line of every expense store.
const Header = "id,amount,category,description,date"

const (
	numFields   = 5
	colID       = 0
	colAmount   = 1
	colCategory = 2
	colDesc     = 3
	colDate     = 4
)

// ReadExpenses reads all expenses from a store reader. The header row is
// required and must match Header. A row with a bad id or the wrong number
// of columns does not fail the read: it is returned with Raw set so totals
// can skip it and a rewrite keeps it. Check reports such rows.
func ReadExpenses(r io.Reader) ([]model.Expense, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, fmt.Errorf("reading store CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	if err := checkHeader(records[0]); err != nil {
		return nil, err
	}

	var expenses []model.Expense
	for _, rec := range records[1:] {
		e, err := UnmarshalExpense(rec)
		if err != nil {
			e = salvageExpense(rec)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// salvageExpense fills what it can from a row UnmarshalExpense rejected.
func salvageExpense(rec []string) model.Expense {
	field := func(i int) string {
		if i < len(rec) {
			return rec[i]
		}
		return ""
	}

	e := model.Expense{
		Amount:      field(colAmount),
		Category:    field(colCategory),
		Description: field(colDesc),
		Date:        field(colDate),
		Raw:         append([]string{}, rec...),
	}
	if n, err := id.Parse(field(colID)); err == nil {
		e.ID = n
	}
	return e
}

// WriteExpenses writes the header followed by every expense.
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(headerFields()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendExpenses writes rows without a header.
func AppendExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalExpense converts an Expense to a CSV row. A malformed row keeps
// its stored id and extra columns; short rows are padded.
func MarshalExpense(e model.Expense) []string {
	row := make([]string, max(numFields, len(e.Raw)))
	copy(row, e.Raw)
	if !e.Malformed() {
		row[colID] = id.Format(e.ID)
	}
	row[colAmount] = e.Amount
	row[colCategory] = e.Category
	row[colDesc] = e.Description
	row[colDate] = e.Date
	return row
}

// UnmarshalExpense converts a CSV row to an Expense. The amount is not
// validated here; totals skip rows whose amount does not parse.
func UnmarshalExpense(record []string) (model.Expense, error) {
	if len(record) != numFields {
		return model.Expense{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	n, err := id.Parse(record[colID])
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing id: %w", err)
	}

	return model.Expense{
		ID:          n,
		Amount:      record[colAmount],
		Category:    record[colCategory],
		Description: record[colDesc],
		Date:        record[colDate],
	}, nil
}

func headerFields() []string {
	return strings.Split(Header, ",")
}

func checkHeader(rec []string) error {
	want := headerFields()
	if len(rec) != len(want) {
		return fmt.Errorf("unexpected header %q", strings.Join(rec, ","))
	}
	for i := range want {
		field := rec[i]
		if i == 0 {
			field = strings.TrimPrefix(field, "\ufeff")
		}
		if field != want[i] {
			return fmt.Errorf("unexpected header %q", strings.Join(rec, ","))
		}
	}
	return nil
}

// readRecords reads raw rows without enforcing the field count.
func readRecords(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}
