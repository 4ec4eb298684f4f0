// Package editor renames a category across every expense in the store.
package editor

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/spendlog-dev/spendlog/internal/model"
	"github.com/spendlog-dev/spendlog/internal/prompt"
)

// Outcomes that end an edit without changing the store.
var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrNoTransactions   = errors.New("no transactions found")
	ErrCancelled        = errors.New("cancelled")
	ErrEmptyName        = errors.New("empty name not allowed")
)

// Store loads and rewrites the full set of expenses.
type Store interface {
	ReadAll() ([]model.Expense, error)
	Rewrite(expenses []model.Expense) error
}

// Result describes a completed rename.
type Result struct {
	Old   string
	New   string
	Count int
}

// Editor walks the operator through picking and renaming a category.
type Editor struct {
	store    Store
	prompter prompt.Prompter
	out      io.Writer
	currency string
}

// New creates an Editor.
func New(store Store, p prompt.Prompter, out io.Writer, currency string) *Editor {
	return &Editor{store: store, prompter: p, out: out, currency: currency}
}

// Categories returns the distinct categories of expenses, sorted. A
// malformed row too short to have a category is left out.
func Categories(expenses []model.Expense) []string {
	seen := make(map[string]struct{})
	var cats []string
	for _, e := range expenses {
		if e.Malformed() && e.Category == "" {
			continue
		}
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		cats = append(cats, e.Category)
	}
	sort.Strings(cats)
	return cats
}

// Rename relabels every expense in category from as to and returns how
// many changed.
func Rename(expenses []model.Expense, from, to string) int {
	n := 0
	for i := range expenses {
		if expenses[i].Category == from {
			expenses[i].Category = to
			n++
		}
	}
	return n
}

// Run lists categories, asks which one to rename, previews its expenses,
// confirms, asks for the new name and rewrites the store. Any of the
// package's sentinel errors means the store was left untouched.
func (ed *Editor) Run() (Result, error) {
	expenses, err := ed.store.ReadAll()
	if err != nil {
		return Result{}, err
	}

	cats := Categories(expenses)
	color.New(color.Bold).Fprintln(ed.out, "\n=== Existing Categories ===")
	for i, c := range cats {
		fmt.Fprintf(ed.out, "%d. %s\n", i+1, c)
	}

	choice, err := ed.prompter.Ask("Enter the number of the category to review/rename: ")
	if err != nil {
		return Result{}, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || n < 1 || n > len(cats) {
		return Result{}, ErrInvalidSelection
	}
	old := cats[n-1]

	fmt.Fprintf(ed.out, "\n--- Transactions in '%s' ---\n", old)
	count := 0
	for _, e := range expenses {
		if e.Category != old {
			continue
		}
		fmt.Fprintf(ed.out, "%s: %s%s | %s (%s)\n", e.Ref(), ed.currency, e.Amount, e.Description, e.Date)
		count++
	}
	if count == 0 {
		return Result{}, ErrNoTransactions
	}

	ok, err := ed.prompter.Confirm(fmt.Sprintf("\nDo you want to rename category '%s'? (y/n): ", old))
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{}, ErrCancelled
	}

	answer, err := ed.prompter.Ask(fmt.Sprintf("Enter new name for '%s': ", old))
	if err != nil {
		return Result{}, err
	}
	name := strings.TrimSpace(answer)
	if name == "" {
		return Result{}, ErrEmptyName
	}

	renamed := Rename(expenses, old, name)
	if err := ed.store.Rewrite(expenses); err != nil {
		return Result{}, fmt.Errorf("saving renamed category: %w", err)
	}

	fmt.Fprintf(ed.out, "\nCategory '%s' renamed to '%s' in %d transaction(s).\n", old, name, renamed)
	return Result{Old: old, New: name, Count: renamed}, nil
}
