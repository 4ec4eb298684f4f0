package id

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// First is the id given to the first record of an empty store.
const First = 1

// ErrMalformed is returned for an id field that is not a positive integer.
var ErrMalformed = errors.New("malformed record id")

// Format renders a record id for the id column.
func Format(n int) string {
	return strconv.Itoa(n)
}

// Parse parses an id column value. Surrounding whitespace is ignored.
func Parse(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	if n < First {
		return 0, fmt.Errorf("%w: %q is not positive", ErrMalformed, s)
	}
	return n, nil
}

// After returns the id that follows the raw id of the newest row.
// A malformed value yields First and ErrMalformed so callers can decide
// whether to degrade or report.
func After(last string) (int, error) {
	n, err := Parse(last)
	if err != nil {
		return First, err
	}
	return n + 1, nil
}
