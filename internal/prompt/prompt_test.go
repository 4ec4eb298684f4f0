package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleAsk(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("  Food \r\nsecond\n"), &out)

	got, err := c.Ask("Enter category: ")
	require.NoError(t, err)
	assert.Equal(t, "  Food ", got, "answer is returned verbatim apart from the line ending")
	assert.Equal(t, "Enter category: ", out.String())

	got, err = c.Ask("next: ")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestConsoleAsk_LastLineWithoutNewline(t *testing.T) {
	c := NewConsole(strings.NewReader("5"), io.Discard)
	got, err := c.Ask("? ")
	require.NoError(t, err)
	assert.Equal(t, "5", got)

	_, err = c.Ask("? ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestConsoleConfirm(t *testing.T) {
	c := NewConsole(strings.NewReader("Y\r\nn\nyes\n y\n"), io.Discard)

	ok, err := c.Confirm("? ")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Confirm("? ")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.Confirm("? ")
	require.NoError(t, err)
	assert.False(t, ok, "only a bare y counts")

	ok, err = c.Confirm("? ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsYes(t *testing.T) {
	assert.True(t, IsYes("y"))
	assert.True(t, IsYes("Y"))
	assert.False(t, IsYes(" y"))
	assert.False(t, IsYes("Y "))
	assert.False(t, IsYes(""))
	assert.False(t, IsYes("n"))
	assert.False(t, IsYes("yy"))
}

func TestScript(t *testing.T) {
	s := NewScript("1", "y")

	got, err := s.Ask("first? ")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	ok, err := s.Confirm("sure? ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, s.Remaining())

	_, err = s.Ask("more? ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{"first? ", "sure? ", "more? "}, s.Questions)
}
