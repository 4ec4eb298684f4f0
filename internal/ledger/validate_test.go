package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header() []string { return headerFields() }

func TestValidateRecords_Clean(t *testing.T) {
	records := [][]string{
		header(),
		{"1", "100", "Food", "Lunch", "2025-01-01"},
		{"2", "15.50", "travel", "KSRTC", "2025-01-02"},
	}
	assert.Empty(t, ValidateRecords(records))
}

func TestValidateRecords_MissingHeader(t *testing.T) {
	errs := ValidateRecords(nil)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "missing header")
}

func TestValidateRecords_BadHeader(t *testing.T) {
	errs := ValidateRecords([][]string{{"id", "amt", "category", "description", "date"}})
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Row)
}

func TestValidateRecords_FieldCount(t *testing.T) {
	errs := ValidateRecords([][]string{header(), {"1", "100", "Food"}})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Description, "expected 5 fields, got 3")
}

func TestValidateRecords_DuplicateID(t *testing.T) {
	errs := ValidateRecords([][]string{
		header(),
		{"1", "1", "a", "d", "x"},
		{"1", "2", "a", "d", "x"},
	})
	require.NotEmpty(t, errs)
	assert.Equal(t, 3, errs[0].Row)
	assert.Contains(t, errs[0].Description, "duplicate id")
}

func TestValidateRecords_DecreasingID(t *testing.T) {
	errs := ValidateRecords([][]string{
		header(),
		{"5", "1", "a", "d", "x"},
		{"2", "2", "a", "d", "x"},
	})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Description, "not greater than previous id 5")
}

func TestValidateRecords_BadAmountAndID(t *testing.T) {
	errs := ValidateRecords([][]string{
		header(),
		{"x", "abc", "a", "d", "x"},
	})
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "malformed record id")
	assert.Contains(t, errs[1].Error(), `amount "abc" is not a number`)
}

func TestCheck_NoStore(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Check()
	assert.ErrorIs(t, err, ErrNoStore)
}

func TestCheck(t *testing.T) {
	s := newTestStore(t)
	writeStore(t, s, Header+"\n1,abc,food,Snack,2025-01-01\n2,10.00,food,Tea,2025-01-01\n")

	errs, err := s.Check()
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "1", errs[0].ID)
}
