// Package shell implements the numbered-menu interactive session.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/spendlog-dev/spendlog/internal/editor"
	"github.com/spendlog-dev/spendlog/internal/ledger"
	"github.com/spendlog-dev/spendlog/internal/prompt"
	"github.com/spendlog-dev/spendlog/internal/tracker"
)

const menu = `
==== Expense Tracker ====
1. Add Expense
2. Import from Bank CSV
3. View Totals by Category
4. Edit Categories
5. Exit
`

// editMessages maps the editor's abort reasons to operator notices.
var editMessages = []struct {
	err error
	msg string
}{
	{ledger.ErrNoStore, "Expense file not found."},
	{editor.ErrInvalidSelection, "Invalid selection."},
	{editor.ErrNoTransactions, "No transactions found."},
	{editor.ErrCancelled, "Cancelled."},
	{editor.ErrEmptyName, "Empty name not allowed."},
}

// Shell reads menu choices until the operator exits or input ends.
type Shell struct {
	tracker  *tracker.Tracker
	prompter prompt.Prompter
	out      io.Writer
	logger   *log.Logger
	format   string
}

// New creates a Shell. format is the statement layout used by the import
// option.
func New(t *tracker.Tracker, p prompt.Prompter, out io.Writer, logger *log.Logger, format string) *Shell {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Shell{tracker: t, prompter: p, out: out, logger: logger, format: format}
}

// Run loops over the menu. It returns nil when the operator exits or input
// ends, and an error only when a statement import fails.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, menu)
		choice, err := s.prompter.Ask("Choose an option: ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.add()
		case "2":
			err = s.importStatement()
		case "3":
			err = s.tracker.PrintTotals()
		case "4":
			err = s.edit()
		case "5":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
			continue
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		var fatal importError
		if errors.As(err, &fatal) {
			return fatal.err
		}
		if err != nil {
			s.logger.Error("operation failed", "err", err)
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

// importError marks a failure that ends the session.
type importError struct {
	err error
}

func (e importError) Error() string { return e.err.Error() }

func (e importError) Unwrap() error { return e.err }

func (s *Shell) add() error {
	amount, err := s.prompter.Ask("Enter amount: ")
	if err != nil {
		return err
	}
	category, err := s.prompter.Ask("Enter category (e.g. Food, Travel): ")
	if err != nil {
		return err
	}
	description, err := s.prompter.Ask("Enter description: ")
	if err != nil {
		return err
	}

	if _, err := s.tracker.AddExpense(amount, category, description, ""); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Expense added.")
	return nil
}

func (s *Shell) importStatement() error {
	answer, err := s.prompter.Ask("Enter full path to your bank CSV file: ")
	if err != nil {
		return err
	}

	_, err = s.tracker.Import(CleanPath(answer), s.format)
	if errors.Is(err, io.EOF) {
		return err
	}
	if err != nil {
		return importError{err: err}
	}
	fmt.Fprintln(s.out, "Import complete.")
	return nil
}

func (s *Shell) edit() error {
	_, err := s.tracker.EditCategory()
	for _, m := range editMessages {
		if errors.Is(err, m.err) {
			fmt.Fprintln(s.out, m.msg)
			return nil
		}
	}
	return err
}

// CleanPath strips surrounding whitespace and quote characters from a
// pasted file path.
func CleanPath(p string) string {
	return strings.Trim(strings.TrimSpace(p), `"'`)
}
