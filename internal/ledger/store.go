package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spendlog-dev/spendlog/internal/id"
	"github.com/spendlog-dev/spendlog/internal/model"
)

// ErrNoStore is returned when the store file does not exist.
var ErrNoStore = errors.New("no expense file found")

// Store is the CSV file holding every expense. It keeps no state between
// calls: each operation opens, uses and closes the file.
type Store struct {
	path string
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the store's file path.
func (s *Store) Path() string {
	return s.path
}

// Init creates the store with just the header row if it does not exist.
// It reports whether a new file was created.
func (s *Store) Init() (bool, error) {
	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking store: %w", err)
	}

	if err := s.ensureDir(); err != nil {
		return false, err
	}
	if err := s.Rewrite(nil); err != nil {
		return false, err
	}
	return true, nil
}

// ReadAll returns every expense in insertion order.
func (s *Store) ReadAll() ([]model.Expense, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoStore
	}
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", s.path, err)
	}
	defer f.Close()

	expenses, err := ReadExpenses(f)
	if err != nil {
		return nil, fmt.Errorf("reading store %s: %w", s.path, err)
	}
	return expenses, nil
}

// NextID returns the id for a new record: one past the id of the last row.
// A missing, header-only or malformed store yields id.First. Other I/O
// failures are returned.
func (s *Store) NextID() (int, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return id.First, nil
	}
	if err != nil {
		return 0, fmt.Errorf("opening store %s: %w", s.path, err)
	}
	defer f.Close()

	records, err := readRecords(f)
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return id.First, nil
		}
		return 0, fmt.Errorf("reading store %s: %w", s.path, err)
	}
	if len(records) <= 1 {
		return id.First, nil
	}

	next, err := id.After(records[len(records)-1][colID])
	if errors.Is(err, id.ErrMalformed) {
		return id.First, nil
	}
	return next, err
}

// Append adds one expense to the end of the store, writing the header
// first if the file is new or empty.
func (s *Store) Append(e model.Expense) error {
	needsHeader := false
	info, err := os.Stat(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		needsHeader = true
		if err := s.ensureDir(); err != nil {
			return err
		}
	case err != nil:
		return fmt.Errorf("checking store: %w", err)
	case info.Size() == 0:
		needsHeader = true
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer f.Close()

	if needsHeader {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendExpenses(f, []model.Expense{e}); err != nil {
		return fmt.Errorf("appending expense %d: %w", e.ID, err)
	}
	return f.Close()
}

// Rewrite replaces the whole store with header plus expenses. The file is
// truncated in place; a crash mid-write can leave it incomplete.
func (s *Store) Rewrite(expenses []model.Expense) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}
	defer f.Close()

	if err := WriteExpenses(f, expenses); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	return f.Close()
}

func (s *Store) ensureDir() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}
	return nil
}
