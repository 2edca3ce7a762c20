package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "handrank.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Table.PerfectHash)
	assert.InDelta(t, 0.9, cfg.Table.LoadFactor, 1e-9)
	assert.Empty(t, cfg.Table.CacheFile)
	assert.Equal(t, 2, cfg.Deal.Players)
	assert.Nil(t, cfg.Deal.Seed)
	require.NoError(t, cfg.Validate())
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
log {
  level = "DEBUG"
}

table {
  perfect_hash = true
  load_factor  = 0.8
  cache_file   = "table.csv"
}

deal {
  players = 6
  seed    = 42
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Table.PerfectHash)
	assert.InDelta(t, 0.8, cfg.Table.LoadFactor, 1e-9)
	assert.Equal(t, "table.csv", cfg.Table.CacheFile)
	assert.Equal(t, 6, cfg.Deal.Players)
	require.NotNil(t, cfg.Deal.Seed)
	assert.Equal(t, int64(42), *cfg.Deal.Seed)
}

func TestLoadPartialConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
table {
  perfect_hash = true
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Table.PerfectHash)
	assert.InDelta(t, 0.9, cfg.Table.LoadFactor, 1e-9)
	assert.Equal(t, 2, cfg.Deal.Players)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax error", `log {`},
		{"unknown block", `server { port = 1 }`},
		{"wrong type", `deal { players = "many" }`},
		{"unknown attribute", `table { size = 3 }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"negative load factor", func(c *Config) { c.Table.LoadFactor = -1 }},
		{"load factor above one", func(c *Config) { c.Table.LoadFactor = 1.5 }},
		{"no players", func(c *Config) { c.Deal.Players = 0 }},
		{"too many players", func(c *Config) { c.Deal.Players = 24 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.Deal.Players = 23
	assert.NoError(t, cfg.Validate())
}
