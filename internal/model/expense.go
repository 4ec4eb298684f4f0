package model

import "strconv"

// Expense is one row of the expense store.
type Expense struct {
	ID          int
	Amount      string // stored as entered; may not be numeric
	Category    string
	Description string
	Date        string // YYYY-MM-DD for manual entries, bank format for imports

	// Raw is the stored record of a row that did not parse, either a bad id
	// or a wrong column count. It is nil for well-formed rows. Rewrites keep
	// its id and any extra columns.
	Raw []string
}

// Malformed reports whether the row was read from a record that did not
// parse.
func (e Expense) Malformed() bool {
	return e.Raw != nil
}

// Ref returns the id as it appears in the store.
func (e Expense) Ref() string {
	if e.Raw != nil {
		if len(e.Raw) == 0 {
			return ""
		}
		return e.Raw[0]
	}
	return strconv.Itoa(e.ID)
}
