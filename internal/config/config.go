package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file read when no --config flag is given.
const DefaultFile = "handrank.hcl"

// Config is the handrank CLI configuration.
type Config struct {
	Log   *LogSettings   `hcl:"log,block"`
	Table *TableSettings `hcl:"table,block"`
	Deal  *DealSettings  `hcl:"deal,block"`
}

// LogSettings controls the CLI logger.
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// TableSettings controls how the lookup table is built and served.
type TableSettings struct {
	PerfectHash bool    `hcl:"perfect_hash,optional"`
	LoadFactor  float64 `hcl:"load_factor,optional"`
	// CacheFile, when set, is a table dump loaded instead of rebuilding.
	CacheFile string `hcl:"cache_file,optional"`
}

// DealSettings are the defaults for the deal command.
type DealSettings struct {
	Players int    `hcl:"players,optional"`
	Seed    *int64 `hcl:"seed,optional"`
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads an HCL configuration file. A missing file yields Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.Log.Level = strings.ToLower(c.Log.Level)

	if c.Table == nil {
		c.Table = &TableSettings{}
	}
	if c.Table.LoadFactor == 0 {
		c.Table.LoadFactor = 0.9
	}

	if c.Deal == nil {
		c.Deal = &DealSettings{}
	}
	if c.Deal.Players == 0 {
		c.Deal.Players = 2
	}
}

// Validate checks the configuration after defaults and overrides are applied.
func (c *Config) Validate() error {
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if c.Table.LoadFactor <= 0 || c.Table.LoadFactor > 1 {
		return fmt.Errorf("table load_factor must be in (0, 1], got %v", c.Table.LoadFactor)
	}
	// Two hole cards each plus a five-card board must fit in one deck.
	if c.Deal.Players < 1 || c.Deal.Players > 23 {
		return fmt.Errorf("deal players must be between 1 and 23, got %d", c.Deal.Players)
	}
	return nil
}
