package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/spendlog-dev/spendlog/internal/categorize"
)

// DefaultPath is the config file read when none is named.
const DefaultPath = "spendlog.yaml"

// Environment variables that override file settings.
const (
	EnvStore  = "SPENDLOG_STORE"
	EnvConfig = "SPENDLOG_CONFIG"
)

// Config represents spendlog.yaml.
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Currency string         `yaml:"currency"`
	Rules    []Rule         `yaml:"rules"`
	Fallback FallbackConfig `yaml:"fallback"`
}

// StoreConfig locates the expense store and its activity log.
type StoreConfig struct {
	Path        string `yaml:"path"`
	ActivityLog string `yaml:"activity_log"` // relative to the store's directory; empty disables
}

// Rule maps a description keyword to a category. Rules are tried in order.
type Rule struct {
	Keyword  string `yaml:"keyword"`
	Category string `yaml:"category"`
}

// FallbackConfig is the amount-range rule applied when no keyword matches.
type FallbackConfig struct {
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Category string  `yaml:"category"` // empty disables
}

// Load reads a config file from disk on top of Default, so fields the file
// leaves out keep their defaults. An explicit empty list or value, such as
// "rules: []", still overrides the default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault reads path, falling back to Default when it does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	fallback := categorize.DefaultAmountRule()
	lo, _ := fallback.Min.Float64()
	hi, _ := fallback.Max.Float64()

	var rules []Rule
	for _, r := range categorize.DefaultRules() {
		rules = append(rules, Rule{Keyword: r.Keyword, Category: r.Category})
	}

	return &Config{
		Store: StoreConfig{
			Path:        "expenses.csv",
			ActivityLog: "activity.csv",
		},
		Currency: "₹",
		Rules:    rules,
		Fallback: FallbackConfig{
			Min:      lo,
			Max:      hi,
			Category: fallback.Category,
		},
	}
}

// LoadDotEnv loads variables from a .env file if one exists. Variables
// already set in the environment win.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ConfigPath picks the config file: explicit flag, then SPENDLOG_CONFIG,
// then DefaultPath.
func ConfigPath(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	return DefaultPath
}

// ApplyOverrides sets the store path from SPENDLOG_STORE and then from
// storeFlag, so the flag wins.
func (c *Config) ApplyOverrides(storeFlag string) {
	if env := os.Getenv(EnvStore); env != "" {
		c.Store.Path = env
	}
	if storeFlag != "" {
		c.Store.Path = storeFlag
	}
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Store.Path) == "" {
		problems = append(problems, "store path cannot be empty")
	}
	for i, r := range c.Rules {
		if strings.TrimSpace(r.Keyword) == "" {
			problems = append(problems, fmt.Sprintf("rule %d: keyword cannot be empty", i+1))
		}
		if strings.TrimSpace(r.Category) == "" {
			problems = append(problems, fmt.Sprintf("rule %d (%s): category cannot be empty", i+1, r.Keyword))
		}
	}
	if c.Fallback.Category != "" && c.Fallback.Min > c.Fallback.Max {
		problems = append(problems, fmt.Sprintf("fallback min %v is greater than max %v", c.Fallback.Min, c.Fallback.Max))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ActivityLogPath resolves the activity log path, or "" when disabled.
func (c *Config) ActivityLogPath() string {
	if c.Store.ActivityLog == "" {
		return ""
	}
	if filepath.IsAbs(c.Store.ActivityLog) {
		return c.Store.ActivityLog
	}
	return filepath.Join(filepath.Dir(c.Store.Path), c.Store.ActivityLog)
}

// CategorizeOptions converts the rules section for the categorizer.
func (c *Config) CategorizeOptions() categorize.Options {
	rules := make([]categorize.Rule, len(c.Rules))
	for i, r := range c.Rules {
		rules[i] = categorize.Rule{Keyword: r.Keyword, Category: r.Category}
	}
	return categorize.Options{
		Rules: rules,
		Amount: categorize.AmountRule{
			Min:      decimal.NewFromFloat(c.Fallback.Min),
			Max:      decimal.NewFromFloat(c.Fallback.Max),
			Category: c.Fallback.Category,
		},
		Currency: c.Currency,
	}
}
