// Package tracker wires the expense store, categorizer, importer, report
// and category editor into the operations offered to the operator.
package tracker

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/spendlog-dev/spendlog/internal/activity"
	"github.com/spendlog-dev/spendlog/internal/categorize"
	"github.com/spendlog-dev/spendlog/internal/config"
	"github.com/spendlog-dev/spendlog/internal/editor"
	"github.com/spendlog-dev/spendlog/internal/importer"
	"github.com/spendlog-dev/spendlog/internal/ledger"
	"github.com/spendlog-dev/spendlog/internal/model"
	"github.com/spendlog-dev/spendlog/internal/prompt"
	"github.com/spendlog-dev/spendlog/internal/report"
)

const dateFormat = "2006-01-02"

// Options configures a Tracker.
type Options struct {
	Config   *config.Config
	Prompter prompt.Prompter
	Out      io.Writer
	Logger   *log.Logger
	Now      func() time.Time // defaults to time.Now
}

// Tracker runs the expense operations against one store.
type Tracker struct {
	store       *ledger.Store
	categorizer *categorize.Categorizer
	parsers     *importer.Registry
	prompter    prompt.Prompter
	out         io.Writer
	logger      *log.Logger
	currency    string
	activityLog string
	now         func() time.Time
}

// New creates a Tracker from opts.
func New(opts Options) *Tracker {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config
	return &Tracker{
		store:       ledger.NewStore(cfg.Store.Path),
		categorizer: categorize.New(cfg.CategorizeOptions(), opts.Prompter, opts.Out),
		parsers:     importer.DefaultRegistry(),
		prompter:    opts.Prompter,
		out:         opts.Out,
		logger:      logger,
		currency:    cfg.Currency,
		activityLog: cfg.ActivityLogPath(),
		now:         now,
	}
}

// Store returns the underlying expense store.
func (t *Tracker) Store() *ledger.Store {
	return t.store
}

// Init creates the store if it does not exist yet.
func (t *Tracker) Init() (bool, error) {
	created, err := t.store.Init()
	if err != nil {
		return false, err
	}
	if created {
		t.logger.Debug("created store", "path", t.store.Path())
	}
	return created, nil
}

// AddExpense appends a manually entered expense. An empty date means today.
func (t *Tracker) AddExpense(amount, category, description, date string) (model.Expense, error) {
	if date == "" {
		date = t.now().Format(dateFormat)
	}

	n, err := t.store.NextID()
	if err != nil {
		return model.Expense{}, fmt.Errorf("allocating id: %w", err)
	}

	e := model.Expense{
		ID:          n,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}
	if err := t.store.Append(e); err != nil {
		return model.Expense{}, err
	}

	t.record(activity.Entry{
		Action:   activity.ActionAdd,
		RecordID: e.ID,
		Details:  fmt.Sprintf("%s %s %s", e.Category, e.Amount, e.Description),
	})
	return e, nil
}

// Import appends the withdrawals of the statement at path. format selects
// the statement layout; empty means importer.DefaultFormat.
func (t *Tracker) Import(path, format string) ([]model.Expense, error) {
	if format == "" {
		format = importer.DefaultFormat
	}
	parser := t.parsers.Get(format)
	if parser == nil {
		return nil, fmt.Errorf("unknown statement format %q", format)
	}

	im := importer.New(t.store, t.categorizer, t.logger)
	added, err := im.ImportFile(path, parser)

	entries := make([]activity.Entry, len(added))
	for i, e := range added {
		entries[i] = activity.Entry{
			Action:   activity.ActionImport,
			RecordID: e.ID,
			Details:  fmt.Sprintf("%s %s %s", e.Category, e.Amount, e.Description),
		}
	}
	t.record(entries...)

	if err != nil {
		return added, err
	}
	t.logger.Info("import finished", "file", path, "records", len(added))
	return added, nil
}

// Totals sums the store by category. Malformed rows and rows with a
// malformed amount are logged and left out.
func (t *Tracker) Totals() (report.Summary, error) {
	expenses, err := t.store.ReadAll()
	if err != nil {
		return report.Summary{}, err
	}
	s := report.Summarize(expenses)
	for _, e := range s.Skipped {
		t.logger.Debug("skipping row", "id", e.Ref(), "amount", e.Amount, "malformed", e.Malformed())
	}
	return s, nil
}

// PrintTotals writes the totals table. A missing store is reported, not
// returned as an error.
func (t *Tracker) PrintTotals() error {
	s, err := t.Totals()
	if errors.Is(err, ledger.ErrNoStore) {
		fmt.Fprintln(t.out, "No expense file found.")
		return nil
	}
	if err != nil {
		return err
	}
	report.Print(t.out, s, t.currency)
	return nil
}

// Categories returns the distinct categories in the store, sorted.
func (t *Tracker) Categories() ([]string, error) {
	expenses, err := t.store.ReadAll()
	if err != nil {
		return nil, err
	}
	return editor.Categories(expenses), nil
}

// EditCategory runs the interactive category rename.
func (t *Tracker) EditCategory() (editor.Result, error) {
	res, err := editor.New(t.store, t.prompter, t.out, t.currency).Run()
	if err != nil {
		return res, err
	}
	t.record(activity.Entry{
		Action:  activity.ActionRename,
		Details: fmt.Sprintf("%s -> %s (%d)", res.Old, res.New, res.Count),
	})
	return res, nil
}

// Check validates the store's invariants.
func (t *Tracker) Check() ([]ledger.ValidationError, error) {
	return t.store.Check()
}

// record appends to the activity log. Failures are logged only.
func (t *Tracker) record(entries ...activity.Entry) {
	if t.activityLog == "" || len(entries) == 0 {
		return
	}
	ts := t.now()
	for i := range entries {
		entries[i].Timestamp = ts
	}
	if err := activity.Append(t.activityLog, entries); err != nil {
		t.logger.Warn("failed to write activity log", "err", err)
	}
}
