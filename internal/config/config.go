// Package config loads the HCL configuration used by the showdown CLI.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	DefaultLogLevel      = "info"
	DefaultSmallBlind    = 10
	DefaultBigBlind      = 20
	DefaultStartingChips = 1000
	DefaultIterations    = 100000
	DefaultWorkers       = 8

	MinPlayers = 2
	MaxPlayers = 10
)

// Config is the complete configuration file.
type Config struct {
	LogLevel string         `hcl:"log_level,optional"`
	Seed     *int64         `hcl:"seed,optional"`
	Table    *TableConfig   `hcl:"table,block"`
	Players  []PlayerConfig `hcl:"player,block"`
	Equity   *EquityConfig  `hcl:"equity,block"`
}

// TableConfig holds the forced bets and default stack for a hand.
type TableConfig struct {
	SmallBlind    int `hcl:"small_blind,optional"`
	BigBlind      int `hcl:"big_blind,optional"`
	StartingChips int `hcl:"starting_chips,optional"`
}

// PlayerConfig is a seat at the table. Seats are filled in declaration order.
type PlayerConfig struct {
	Name  string `hcl:"name,label"`
	Chips int    `hcl:"chips,optional"`
}

// EquityConfig tunes the odds calculator.
type EquityConfig struct {
	Iterations int `hcl:"iterations,optional"`
	Workers    int `hcl:"workers,optional"`
}

// Default returns the configuration used when no file is present: a heads-up
// table with 10/20 blinds and 1000 chips each.
func Default() *Config {
	cfg := &Config{Players: defaultPlayers()}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file, falling back to Default when the
// file does not exist.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if len(cfg.Players) == 0 {
		cfg.Players = defaultPlayers()
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func defaultPlayers() []PlayerConfig {
	return []PlayerConfig{{Name: "Hero"}, {Name: "Villain"}}
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Table == nil {
		c.Table = &TableConfig{}
	}
	if c.Table.SmallBlind == 0 {
		c.Table.SmallBlind = DefaultSmallBlind
	}
	if c.Table.BigBlind == 0 {
		c.Table.BigBlind = c.Table.SmallBlind * 2
	}
	if c.Table.StartingChips == 0 {
		c.Table.StartingChips = DefaultStartingChips
	}
	for i := range c.Players {
		if c.Players[i].Chips == 0 {
			c.Players[i].Chips = c.Table.StartingChips
		}
	}
	if c.Equity == nil {
		c.Equity = &EquityConfig{}
	}
	if c.Equity.Iterations == 0 {
		c.Equity.Iterations = DefaultIterations
	}
	if c.Equity.Workers == 0 {
		c.Equity.Workers = DefaultWorkers
	}
}

// Validate checks the configuration for values the game cannot run with.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	t := c.Table
	if t.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive")
	}
	if t.BigBlind <= t.SmallBlind {
		return fmt.Errorf("big blind must be greater than small blind")
	}
	if t.StartingChips <= 0 {
		return fmt.Errorf("starting chips must be positive")
	}

	if len(c.Players) < MinPlayers || len(c.Players) > MaxPlayers {
		return fmt.Errorf("players must be between %d and %d, got %d", MinPlayers, MaxPlayers, len(c.Players))
	}
	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("player name must not be empty")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate player name: %s", p.Name)
		}
		seen[p.Name] = true
		if p.Chips < t.BigBlind {
			return fmt.Errorf("player %s: chips %d below big blind %d", p.Name, p.Chips, t.BigBlind)
		}
	}

	if c.Equity.Iterations < 1 {
		return fmt.Errorf("equity iterations must be positive")
	}
	if c.Equity.Workers < 1 {
		return fmt.Errorf("equity workers must be positive")
	}
	return nil
}
