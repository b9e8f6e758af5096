package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level holdback.yaml configuration.
type Config struct {
	Account  AccountConfig  `yaml:"account"`
	Calendar CalendarConfig `yaml:"calendar"`
}

// AccountConfig holds the tracked bank account's balances.
type AccountConfig struct {
	// StartingBalance seeds the running balance at the oldest imported
	// transaction.
	StartingBalance float64 `yaml:"starting_balance"`
	// CurrentBalance is the balance the user last reported; projections
	// start from it.
	CurrentBalance float64 `yaml:"current_balance"`
}

// CalendarConfig extends the built-in bank holiday calendar with one-off
// closures or observance changes the computed rules miss.
type CalendarConfig struct {
	ExtraHolidays []string `yaml:"extra_holidays,omitempty"` // YYYY-MM-DD
}

// Load reads a holdback.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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

// Default returns a Config with zero balances and no extra holidays.
func Default() *Config {
	return &Config{}
}

// StartingBalance returns the starting balance as a decimal.
func (c *Config) StartingBalance() decimal.Decimal {
	return decimal.NewFromFloat(c.Account.StartingBalance)
}

// CurrentBalance returns the current balance as a decimal.
func (c *Config) CurrentBalance() decimal.Decimal {
	return decimal.NewFromFloat(c.Account.CurrentBalance)
}

// ExtraHolidays parses the configured holiday dates.
func (c *Config) ExtraHolidays() ([]time.Time, error) {
	var out []time.Time
	for _, s := range c.Calendar.ExtraHolidays {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("parsing extra holiday %q: %w", s, err)
		}
		out = append(out, t)
	}
	return out, nil
}
