package report

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlog-dev/spendlog/internal/model"
)

func init() {
	color.NoColor = true
}

func exp(n int, amount, category string) model.Expense {
	return model.Expense{ID: n, Amount: amount, Category: category, Description: "d", Date: "2025-01-01"}
}

func TestSummarize_FirstSeenOrder(t *testing.T) {
	s := Summarize([]model.Expense{
		exp(1, "10", "travel"),
		exp(2, "5.25", "food"),
		exp(3, "2.75", "travel"),
		exp(4, "1", "bill"),
	})

	require.Len(t, s.Totals, 3)
	assert.Equal(t, "travel", s.Totals[0].Category)
	assert.Equal(t, "12.75", s.Totals[0].Total.StringFixed(2))
	assert.Equal(t, "food", s.Totals[1].Category)
	assert.Equal(t, "bill", s.Totals[2].Category)
	assert.Empty(t, s.Skipped)
}

func TestSummarize_SkipsMalformed(t *testing.T) {
	s := Summarize([]model.Expense{
		exp(1, "abc", "food"),
		exp(2, "10.00", "food"),
	})

	total, ok := s.Total("food")
	require.True(t, ok)
	assert.Equal(t, "10.00", total.StringFixed(2))
	require.Len(t, s.Skipped, 1)
	assert.Equal(t, 1, s.Skipped[0].ID)
}

func TestSummarize_OnlyMalformedCategoryAbsent(t *testing.T) {
	s := Summarize([]model.Expense{exp(1, "", "misc")})
	_, ok := s.Total("misc")
	assert.False(t, ok)
	assert.Len(t, s.Skipped, 1)
}

func TestSummarize_CaseSensitiveCategories(t *testing.T) {
	s := Summarize([]model.Expense{exp(1, "1", "Food"), exp(2, "2", "food")})
	assert.Len(t, s.Totals, 2)
}

func TestSummarize_ExactDecimalSum(t *testing.T) {
	s := Summarize([]model.Expense{exp(1, "0.1", "a"), exp(2, "0.2", "a")})
	total, _ := s.Total("a")
	assert.Equal(t, "0.3", total.String())
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Empty(t, s.Totals)
	assert.Empty(t, s.Skipped)
}

func TestPrint(t *testing.T) {
	s := Summarize([]model.Expense{
		exp(1, "100", "Food"),
		exp(2, "abc", "Food"),
		exp(3, "20.5", "travel"),
	})

	var buf bytes.Buffer
	Print(&buf, s, "₹")

	want := "Skipping invalid amount: abc (ID: 2)\n" +
		"\n=== Total Spent by Category ===\n" +
		"Food           : ₹100.00\n" +
		"travel         : ₹20.50\n"
	assert.Equal(t, want, buf.String())
}

func TestPrint_MalformedRows(t *testing.T) {
	s := Summarize([]model.Expense{
		exp(1, "10.00", "food"),
		{Amount: "5", Category: "food", Raw: []string{"x", "5", "food"}},
		exp(2, "abc", "food"),
	})

	var buf bytes.Buffer
	Print(&buf, s, "₹")

	want := "Skipping malformed row: x,5,food\n" +
		"Skipping invalid amount: abc (ID: 2)\n" +
		"\n=== Total Spent by Category ===\n" +
		"food           : ₹10.00\n"
	assert.Equal(t, want, buf.String())
}
