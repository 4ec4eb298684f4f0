package model

import "strings"

// StatementRow is one transaction read from a bank statement export.
// Fields are kept as raw text; the importer trims them.
type StatementRow struct {
	Date       string
	Narration  string
	Withdrawal string // empty for deposits
}

// IsWithdrawal reports whether the row moves money out of the account.
func (r StatementRow) IsWithdrawal() bool {
	return strings.TrimSpace(r.Withdrawal) != ""
}
