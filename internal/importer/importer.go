package importer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/spendlog-dev/spendlog/internal/categorize"
	"github.com/spendlog-dev/spendlog/internal/model"
)

// Parser converts a bank statement export into StatementRows. When it
// fails partway it returns the rows read so far with the error.
type Parser interface {
	Parse(r io.Reader) ([]model.StatementRow, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultFormat is the statement layout used when none is named.
const DefaultFormat = "hdfc"

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&HDFCParser{})
	r.Register(&ChaseParser{})
	return r
}

// Categorizer picks a category for one transaction.
type Categorizer interface {
	Categorize(description, amount string) (categorize.Result, error)
}

// Store is where imported expenses are appended.
type Store interface {
	NextID() (int, error)
	Append(e model.Expense) error
}

// Importer appends the withdrawals of a statement to the store.
type Importer struct {
	store       Store
	categorizer Categorizer
	logger      *log.Logger
}

// New creates an Importer.
func New(store Store, categorizer Categorizer, logger *log.Logger) *Importer {
	return &Importer{store: store, categorizer: categorizer, logger: logger}
}

// ImportFile opens the statement at path and imports it with p.
func (im *Importer) ImportFile(path string, p Parser) ([]model.Expense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	return im.Import(f, p)
}

// Import parses a statement and appends one expense per withdrawal row.
// Each row gets a fresh id and is written before the next row is
// categorized, so a failure leaves the rows already appended in place.
// Rows before a malformed statement line are imported before the parse
// error is returned. The appended expenses are returned even on error.
func (im *Importer) Import(r io.Reader, p Parser) ([]model.Expense, error) {
	rows, parseErr := p.Parse(r)
	if parseErr != nil {
		parseErr = fmt.Errorf("parsing %s statement: %w", p.Format(), parseErr)
		if len(rows) == 0 {
			return nil, parseErr
		}
	}

	var added []model.Expense
	for i, row := range rows {
		if !row.IsWithdrawal() {
			im.logger.Debug("skipping non-withdrawal row", "row", i+2)
			continue
		}

		amount := strings.TrimSpace(row.Withdrawal)
		description := strings.TrimSpace(row.Narration)
		date := strings.TrimSpace(row.Date)

		res, err := im.categorizer.Categorize(description, amount)
		if err != nil {
			return added, fmt.Errorf("categorizing row %d: %w", i+2, err)
		}

		n, err := im.store.NextID()
		if err != nil {
			return added, fmt.Errorf("allocating id: %w", err)
		}

		e := model.Expense{
			ID:          n,
			Amount:      amount,
			Category:    res.Category,
			Description: description,
			Date:        date,
		}
		if err := im.store.Append(e); err != nil {
			return added, err
		}
		im.logger.Debug("imported row", "id", n, "category", res.Category, "source", res.Source)
		added = append(added, e)
	}
	return added, parseErr
}
