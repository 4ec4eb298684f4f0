// Package report sums expenses per category.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summary holds per-category totals in first-seen order and the expenses
// left out because their row or amount did not parse.
type Summary struct {
	Totals  []CategoryTotal
	Skipped []model.Expense
}

// Summarize sums amounts by category. Categories are compared exactly, so
// "Food" and "food" are separate totals.
func Summarize(expenses []model.Expense) Summary {
	var s Summary
	index := make(map[string]int)
	for _, e := range expenses {
		if e.Malformed() {
			s.Skipped = append(s.Skipped, e)
			continue
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(e.Amount))
		if err != nil {
			s.Skipped = append(s.Skipped, e)
			continue
		}
		i, ok := index[e.Category]
		if !ok {
			i = len(s.Totals)
			index[e.Category] = i
			s.Totals = append(s.Totals, CategoryTotal{Category: e.Category, Total: decimal.Zero})
		}
		s.Totals[i].Total = s.Totals[i].Total.Add(amount)
	}
	return s
}

// Total returns the total for category and whether it is present.
func (s Summary) Total(category string) (decimal.Decimal, bool) {
	for _, t := range s.Totals {
		if t.Category == category {
			return t.Total, true
		}
	}
	return decimal.Zero, false
}

// Print writes the skipped-row notices followed by the totals table.
func Print(w io.Writer, s Summary, currency string) {
	for _, e := range s.Skipped {
		if e.Malformed() {
			fmt.Fprintf(w, "Skipping malformed row: %s\n", strings.Join(e.Raw, ","))
			continue
		}
		fmt.Fprintf(w, "Skipping invalid amount: %s (ID: %d)\n", e.Amount, e.ID)
	}

	color.New(color.Bold).Fprintln(w, "\n=== Total Spent by Category ===")
	for _, t := range s.Totals {
		fmt.Fprintf(w, "%-15s: %s%s\n", t.Category, currency, t.Total.StringFixed(2))
	}
}
