package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/handrank/internal/config"
	"github.com/lox/handrank/internal/fileutil"
	"github.com/lox/handrank/poker"
)

type globals struct {
	ConfigFile string
	LogLevel   string
	Debug      bool
}

// app is bound into every command's Run method.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	clock  quartz.Clock
	out    io.Writer
}

func newApp(g globals, out, logOut io.Writer, clock quartz.Clock) (*app, error) {
	cfg, err := config.Load(g.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", g.ConfigFile, err)
	}

	if g.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(g.LogLevel)
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(logOut, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "handrank",
	})

	return &app{cfg: cfg, logger: logger, clock: clock, out: out}, nil
}

// evaluator builds an evaluator from the table settings. A configured cache
// file is loaded when present and written after a fresh build otherwise.
func (a *app) evaluator() (*poker.Evaluator, error) {
	opts := []poker.Option{
		poker.WithLogger(a.logger),
		poker.WithClock(a.clock),
	}
	if a.cfg.Table.PerfectHash {
		opts = append(opts, poker.WithPerfectHash(a.cfg.Table.LoadFactor))
	}

	cache := a.cfg.Table.CacheFile
	if cache == "" {
		return poker.NewEvaluator(opts...)
	}

	table, err := readTableFile(cache)
	switch {
	case err == nil:
		a.logger.Debug("Loaded lookup table", "path", cache)
		return poker.NewEvaluator(append(opts, poker.WithTable(table))...)
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("load table cache %s: %w", cache, err)
	}

	e, err := poker.NewEvaluator(opts...)
	if err != nil {
		return nil, err
	}
	if err := writeTableFile(cache, e.Table()); err != nil {
		return nil, fmt.Errorf("write table cache %s: %w", cache, err)
	}
	a.logger.Info("Wrote lookup table cache", "path", cache)
	return e, nil
}

func readTableFile(path string) (*poker.LookupTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return poker.ReadLookupTable(f)
}

func writeTableFile(path string, table *poker.LookupTable) error {
	return fileutil.WriteAtomic(path, 0o644, table.Dump)
}
