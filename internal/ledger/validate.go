package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spendlog-dev/spendlog/internal/id"
)

// ValidationError describes one problem found in the store.
type ValidationError struct {
	Row         int // 1-based line of the CSV record; 1 is the header
	ID          string
	Description string
}

func (e ValidationError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Description)
	}
	return fmt.Sprintf("row %d [id %s]: %s", e.Row, e.ID, e.Description)
}

// Check reads the store and validates it with ValidateRecords.
func (s *Store) Check() ([]ValidationError, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoStore
	}
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", s.path, err)
	}
	defer f.Close()

	records, err := readRecords(f)
	if err != nil {
		return nil, fmt.Errorf("reading store %s: %w", s.path, err)
	}
	return ValidateRecords(records), nil
}

// ValidateRecords checks raw store rows: header present, five fields per
// row, positive unique ids in increasing order, numeric amounts.
func ValidateRecords(records [][]string) []ValidationError {
	var errs []ValidationError

	if len(records) == 0 {
		return []ValidationError{{Row: 1, Description: "missing header"}}
	}
	if err := checkHeader(records[0]); err != nil {
		errs = append(errs, ValidationError{Row: 1, Description: err.Error()})
	}

	seen := make(map[int]int)
	prev := 0
	for i, rec := range records[1:] {
		row := i + 2
		if len(rec) != numFields {
			errs = append(errs, ValidationError{
				Row:         row,
				Description: fmt.Sprintf("expected %d fields, got %d", numFields, len(rec)),
			})
			continue
		}

		rawID := rec[colID]
		n, err := id.Parse(rawID)
		if err != nil {
			errs = append(errs, ValidationError{Row: row, ID: rawID, Description: err.Error()})
		} else {
			if first, dup := seen[n]; dup {
				errs = append(errs, ValidationError{
					Row:         row,
					ID:          rawID,
					Description: fmt.Sprintf("duplicate id, first used on row %d", first),
				})
			} else {
				seen[n] = row
			}
			if n <= prev {
				errs = append(errs, ValidationError{
					Row:         row,
					ID:          rawID,
					Description: fmt.Sprintf("id not greater than previous id %d", prev),
				})
			}
			if n > prev {
				prev = n
			}
		}

		if _, err := decimal.NewFromString(strings.TrimSpace(rec[colAmount])); err != nil {
			errs = append(errs, ValidationError{
				Row:         row,
				ID:          rawID,
				Description: fmt.Sprintf("amount %q is not a number", rec[colAmount]),
			})
		}
	}

	return errs
}
