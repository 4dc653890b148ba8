package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, 10, cfg.Table.SmallBlind)
	assert.Equal(t, 20, cfg.Table.BigBlind)
	require.Len(t, cfg.Players, 2)
	assert.Equal(t, 1000, cfg.Players[0].Chips)
	assert.Equal(t, DefaultIterations, cfg.Equity.Iterations)
}

func TestParse(t *testing.T) {
	t.Parallel()

	src := `
log_level = "debug"
seed      = 42

table {
  small_blind    = 5
  starting_chips = 500
}

player "Sen" {}

player "AI_Bot" {
  chips = 1500
}

equity {
  iterations = 2000
}
`
	cfg, err := Parse([]byte(src), "test.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.LogLevel)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, 5, cfg.Table.SmallBlind)
	assert.Equal(t, 10, cfg.Table.BigBlind, "big blind defaults to twice the small blind")
	assert.Equal(t, []PlayerConfig{{Name: "Sen", Chips: 500}, {Name: "AI_Bot", Chips: 1500}}, cfg.Players)
	assert.Equal(t, 2000, cfg.Equity.Iterations)
	assert.Equal(t, DefaultWorkers, cfg.Equity.Workers)
}

func TestParseEmptyUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(""), "empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`table {`), "bad.hcl")
	assert.ErrorContains(t, err, "failed to parse")

	_, err = Parse([]byte(`unknown = 1`), "bad.hcl")
	assert.ErrorContains(t, err, "failed to decode")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "showdown.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`player "a" {}
player "b" {}
player "c" {}
`), 0o600))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Players, 3)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
		{"small blind", func(c *Config) { c.Table.SmallBlind = -1 }, "small blind"},
		{"big blind", func(c *Config) { c.Table.BigBlind = c.Table.SmallBlind }, "big blind"},
		{"one player", func(c *Config) { c.Players = c.Players[:1] }, "players must be between"},
		{"too many players", func(c *Config) {
			for i := range 9 {
				c.Players = append(c.Players, PlayerConfig{Name: string(rune('a' + i)), Chips: 100})
			}
		}, "players must be between"},
		{"duplicate", func(c *Config) { c.Players[1].Name = c.Players[0].Name }, "duplicate player"},
		{"short stack", func(c *Config) { c.Players[0].Chips = 5 }, "below big blind"},
		{"iterations", func(c *Config) { c.Equity.Iterations = 0 }, "iterations"},
		{"workers", func(c *Config) { c.Equity.Workers = -2 }, "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}
