package ledger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlog-dev/spendlog/internal/model"
)

func TestRoundTrip(t *testing.T) {
	expenses := []model.Expense{
		{ID: 1, Amount: "100", Category: "Food", Description: "Lunch", Date: "2025-01-03"},
		{ID: 2, Amount: "150.00", Category: "food", Description: "UPI-PAYTM GROCERY", Date: "04/01/25"},
	}

	var buf bytes.Buffer
	err := WriteExpenses(&buf, expenses)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(buf.String(), Header+"\n"))

	got, err := ReadExpenses(&buf)
	require.NoError(t, err)
	assert.Equal(t, expenses, got)
}

func TestSpecialCharactersInDescription(t *testing.T) {
	e := model.Expense{
		ID:          3,
		Amount:      "12.50",
		Category:    "misc",
		Description: `Dinner, "late" — with friends`,
		Date:        "2025-02-01",
	}

	var buf bytes.Buffer
	require.NoError(t, WriteExpenses(&buf, []model.Expense{e}))

	got, err := ReadExpenses(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, e.Description, got[0].Description)
}

func TestMalformedAmountSurvivesRead(t *testing.T) {
	data := Header + "\n1,abc,food,Snack,2025-01-01\n"
	got, err := ReadExpenses(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "abc", got[0].Amount)
}

func TestReadExpenses_Empty(t *testing.T) {
	got, err := ReadExpenses(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ReadExpenses(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadExpenses_BadHeader(t *testing.T) {
	_, err := ReadExpenses(strings.NewReader("a,b,c,d,e\n1,2,3,4,5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected header")
}

func TestReadExpenses_BOMHeader(t *testing.T) {
	data := "\ufeff" + Header + "\n1,5,food,Tea,2025-01-01\n"
	got, err := ReadExpenses(strings.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestReadExpenses_KeepsMalformedRows(t *testing.T) {
	data := Header + "\n1,10.00,food,Lunch,2025-01-01\nx,5,food\n2,abc,food,Tea,2025-01-02,extra\n"
	got, err := ReadExpenses(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.False(t, got[0].Malformed())

	assert.True(t, got[1].Malformed())
	assert.Equal(t, 0, got[1].ID)
	assert.Equal(t, "x", got[1].Ref())
	assert.Equal(t, "5", got[1].Amount)
	assert.Equal(t, "food", got[1].Category)
	assert.Equal(t, "", got[1].Date)

	assert.True(t, got[2].Malformed())
	assert.Equal(t, 2, got[2].ID)
	assert.Equal(t, "Tea", got[2].Description)
}

func TestMarshalExpense_Malformed(t *testing.T) {
	e := model.Expense{Amount: "5", Category: "meals", Raw: []string{"x", "5", "food"}}
	assert.Equal(t, []string{"x", "5", "meals", "", ""}, MarshalExpense(e))

	e = model.Expense{ID: 2, Amount: "1", Category: "c", Description: "d", Date: "t", Raw: []string{" 2", "1", "c", "d", "t", "extra"}}
	assert.Equal(t, []string{" 2", "1", "c", "d", "t", "extra"}, MarshalExpense(e))
}

func TestUnmarshalExpense_BadFieldCount(t *testing.T) {
	_, err := UnmarshalExpense([]string{"1", "2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 5 fields")
}

func TestUnmarshalExpense_BadID(t *testing.T) {
	_, err := UnmarshalExpense([]string{"x", "1", "food", "Tea", "2025-01-01"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing id")
}

func TestMarshalExpense(t *testing.T) {
	row := MarshalExpense(model.Expense{ID: 7, Amount: "9.99", Category: "bill", Description: "BESCOM", Date: "2025-03-01"})
	assert.Equal(t, []string{"7", "9.99", "bill", "BESCOM", "2025-03-01"}, row)
}

func TestAppendExpenses_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	err := AppendExpenses(&buf, []model.Expense{{ID: 1, Amount: "1", Category: "c", Description: "d", Date: "x"}})
	require.NoError(t, err)
	assert.Equal(t, "1,1,c,d,x\n", buf.String())
}
