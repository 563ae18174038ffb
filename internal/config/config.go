package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// FileName is the config file at the root of a splitdue data directory.
const FileName = "splitdue.yaml"

// Config represents the top-level splitdue.yaml configuration.
type Config struct {
	// Person is the default counterparty name.
	Person string `yaml:"person"`
	// SplitRatio is the fallback share of an ambiguous expense, as a decimal
	// string so no precision is lost ("0.5" by default).
	SplitRatio string `yaml:"split_ratio"`
	// TransactionsDir holds the wallet CSV exports, relative to the data dir.
	TransactionsDir string       `yaml:"transactions_dir"`
	Export          ExportConfig `yaml:"export"`
}

// ExportConfig controls summary exports.
type ExportConfig struct {
	// Formats are applied when the summary command gets no --export flag.
	Formats []string `yaml:"formats,omitempty"`
	// OutDir is where exported files land, relative to the data dir.
	OutDir string `yaml:"out_dir"`
}

// Ratio parses the configured split ratio.
func (c *Config) Ratio() (decimal.Decimal, error) {
	r, err := decimal.NewFromString(c.SplitRatio)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing split_ratio %q: %w", c.SplitRatio, err)
	}
	return r, nil
}

// Load reads a splitdue.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new data directory.
func Default(person string) *Config {
	return &Config{
		Person:          person,
		SplitRatio:      "0.5",
		TransactionsDir: "transactions",
		Export: ExportConfig{
			OutDir: "exports",
		},
	}
}
