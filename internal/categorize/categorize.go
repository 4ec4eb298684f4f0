// Package categorize assigns a category to a bank transaction from its
// description and amount, asking the operator when no rule applies.
package categorize

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/spendlog-dev/spendlog/internal/prompt"
)

// Source records which step picked a category.
type Source string

const (
	SourceKeyword  Source = "keyword"
	SourceAmount   Source = "amount"
	SourceOperator Source = "operator"
)

const (
	noticeWidth = 30
	promptWidth = 40
)

// Result is the outcome of categorizing one transaction.
type Result struct {
	Category string
	Source   Source
	Keyword  string // set for SourceKeyword
}

// Options configures a Categorizer.
type Options struct {
	Rules    []Rule
	Amount   AmountRule
	Currency string
}

// Categorizer runs keyword rules, then the amount rule, then asks the
// operator.
type Categorizer struct {
	rules    []Rule
	amount   AmountRule
	currency string
	prompter prompt.Prompter
	out      io.Writer
}

// New creates a Categorizer. Notices are written to out and unmatched
// transactions are sent to p.
func New(opts Options, p prompt.Prompter, out io.Writer) *Categorizer {
	return &Categorizer{
		rules:    opts.Rules,
		amount:   opts.Amount,
		currency: opts.Currency,
		prompter: p,
		out:      out,
	}
}

// Match applies the automatic rules only.
func (c *Categorizer) Match(description, amount string) (Result, bool) {
	fold := cases.Fold()
	desc := fold.String(description)
	for _, r := range c.rules {
		if r.Keyword == "" {
			continue
		}
		if strings.Contains(desc, fold.String(r.Keyword)) {
			return Result{Category: r.Category, Source: SourceKeyword, Keyword: r.Keyword}, true
		}
	}

	if c.inAmountRange(amount) {
		return Result{Category: c.amount.Category, Source: SourceAmount}, true
	}
	return Result{}, false
}

// Categorize returns the category for a transaction. Automatic matches are
// announced on the notice writer; otherwise the operator's answer is used
// verbatim.
func (c *Categorizer) Categorize(description, amount string) (Result, error) {
	if res, ok := c.Match(description, amount); ok {
		fmt.Fprintf(c.out, "Auto-categorized '%s...' as '%s'\n",
			Truncate(description, noticeWidth), color.New(color.FgGreen).Sprint(res.Category))
		return res, nil
	}

	question := fmt.Sprintf("Enter category for: %s... | %s%s: ",
		Truncate(description, promptWidth), c.currency, amount)
	answer, err := c.prompter.Ask(question)
	if err != nil {
		return Result{}, fmt.Errorf("asking category: %w", err)
	}
	return Result{Category: answer, Source: SourceOperator}, nil
}

// inAmountRange reports whether amount parses and lies within the amount
// rule. A non-numeric amount is simply not a match.
func (c *Categorizer) inAmountRange(amount string) bool {
	if c.amount.Category == "" {
		return false
	}
	v, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return false
	}
	return v.GreaterThanOrEqual(c.amount.Min) && v.LessThanOrEqual(c.amount.Max)
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
