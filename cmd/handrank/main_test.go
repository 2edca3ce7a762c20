package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handrank/poker"
)

func newTestApp(t *testing.T, configBody string) (*app, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "handrank.hcl")
	if configBody != "" {
		require.NoError(t, os.WriteFile(path, []byte(configBody), 0o600))
	}

	clock := quartz.NewMock(t)
	clock.Set(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	var out bytes.Buffer
	a, err := newApp(globals{ConfigFile: path}, &out, io.Discard, clock)
	require.NoError(t, err)
	return a, &out
}

func TestNewAppOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.hcl")

	a, err := newApp(globals{ConfigFile: path, LogLevel: "WARN"}, io.Discard, io.Discard, quartz.NewReal())
	require.NoError(t, err)
	assert.Equal(t, "warn", a.cfg.Log.Level)

	a, err = newApp(globals{ConfigFile: path, LogLevel: "warn", Debug: true}, io.Discard, io.Discard, quartz.NewReal())
	require.NoError(t, err)
	assert.Equal(t, "debug", a.cfg.Log.Level)

	_, err = newApp(globals{ConfigFile: path, LogLevel: "chatty"}, io.Discard, io.Discard, quartz.NewReal())
	assert.Error(t, err)
}

func TestEvalCmd(t *testing.T) {
	a, out := newTestApp(t, "")

	cmd := EvalCmd{Cards: []string{"As", "Ks", "Qs", "Js", "Ts"}}
	require.NoError(t, cmd.Run(a))
	assert.Contains(t, out.String(), "Straight Flush")
	assert.Contains(t, out.String(), "rank 1 ")

	out.Reset()
	cmd = EvalCmd{Cards: []string{"7c5d4h3s2c"}}
	require.NoError(t, cmd.Run(a))
	assert.Contains(t, out.String(), "High Card")
	assert.Contains(t, out.String(), "rank 7462")
}

func TestEvalCmdErrors(t *testing.T) {
	a, _ := newTestApp(t, "")

	err := (&EvalCmd{Cards: []string{"AsKs"}}).Run(a)
	assert.ErrorIs(t, err, poker.ErrInvalidHandSize)

	err = (&EvalCmd{Cards: []string{"AsKsQsJsXx"}}).Run(a)
	assert.ErrorIs(t, err, poker.ErrInvalidCard)

	err = (&EvalCmd{Cards: []string{"AsAsQsJsTs"}}).Run(a)
	assert.ErrorIs(t, err, poker.ErrLookupMiss)
}

func TestClassifyCmd(t *testing.T) {
	a, out := newTestApp(t, "")

	require.NoError(t, (&ClassifyCmd{Rank: 200}).Run(a))
	assert.Contains(t, out.String(), "Full House")
	assert.Contains(t, out.String(), "(167-322)")

	for _, rank := range []int{-1, 0, 7463, 1 << 20} {
		err := (&ClassifyCmd{Rank: rank}).Run(a)
		assert.ErrorIs(t, err, poker.ErrInvalidRank, "rank %d", rank)
	}
}

func TestTableStatsCmd(t *testing.T) {
	a, out := newTestApp(t, "")

	require.NoError(t, (&TableStatsCmd{}).Run(a))
	assert.Contains(t, out.String(), "Four of a Kind")
	assert.Contains(t, out.String(), "1610-2467")
	assert.Contains(t, out.String(), "flush map 1287, unsuited map 6175")
}

func TestTableDumpCmd(t *testing.T) {
	a, out := newTestApp(t, "")

	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, (&TableDumpCmd{Out: path}).Run(a))
	assert.Empty(t, out.String())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	table, err := poker.ReadLookupTable(f)
	require.NoError(t, err)
	assert.Len(t, table.Entries(), 7462)

	require.NoError(t, (&TableDumpCmd{}).Run(a))
	assert.Contains(t, out.String(), "table,prime_product,rank\n")
}

func TestTableCacheFile(t *testing.T) {
	cache := filepath.Join(t.TempDir(), "cache.csv")
	a, _ := newTestApp(t, `
table {
  perfect_hash = true
  cache_file   = "`+filepath.ToSlash(cache)+`"
}
`)

	_, err := os.Stat(cache)
	require.ErrorIs(t, err, os.ErrNotExist)

	e, err := a.evaluator()
	require.NoError(t, err)
	_, err = os.Stat(cache)
	require.NoError(t, err, "first build writes the cache")

	cached, err := a.evaluator()
	require.NoError(t, err)
	assert.Equal(t, e.Table().Entries(), cached.Table().Entries())

	require.NoError(t, os.WriteFile(cache, []byte("table,prime_product,rank\nflush,1,1\n"), 0o600))
	_, err = a.evaluator()
	assert.ErrorIs(t, err, poker.ErrTableCorrupt)
}

func TestDealCmdIsDeterministic(t *testing.T) {
	seed := int64(99)

	a, first := newTestApp(t, "")
	require.NoError(t, (&DealCmd{Players: 4, Seed: &seed}).Run(a))

	b, second := newTestApp(t, "")
	require.NoError(t, (&DealCmd{Players: 4, Seed: &seed}).Run(b))

	assert.Equal(t, first.String(), second.String())
	for _, want := range []string{"seed 99", "Player 4:", "FLOP", "TURN", "RIVER", "Winner:"} {
		assert.Contains(t, first.String(), want)
	}
	assert.NotContains(t, first.String(), "Player 5:")
}

func TestDealCmdUsesConfig(t *testing.T) {
	a, out := newTestApp(t, `
deal {
  players = 3
  seed    = 7
}
`)

	require.NoError(t, (&DealCmd{}).Run(a))
	assert.Contains(t, out.String(), "seed 7")
	assert.Contains(t, out.String(), "Player 3:")
	assert.NotContains(t, out.String(), "Player 4:")
}

func TestDealCmdSeedsFromClock(t *testing.T) {
	a, out := newTestApp(t, "")

	require.NoError(t, (&DealCmd{}).Run(a))
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixNano()
	assert.Contains(t, out.String(), fmt.Sprintf("seed %d", want))
}

func TestDealCmdRejectsPlayerCount(t *testing.T) {
	a, _ := newTestApp(t, "")
	assert.Error(t, (&DealCmd{Players: 24}).Run(a))
	assert.Error(t, (&DealCmd{Players: -1}).Run(a))
}

func TestOddsCmd(t *testing.T) {
	a, out := newTestApp(t, "")
	seed := int64(3)

	cmd := OddsCmd{
		Hands:         []string{"AsAh", "Kd Kc"},
		Board:         "Ks7c2h",
		Possibilities: true,
		Iterations:    500,
		Seed:          &seed,
	}
	require.NoError(t, cmd.Run(a))

	for _, want := range []string{"board", "Ks 7c 2h", "As Ah", "Kd Kc", "equity", "Three of a Kind", "500 iterations"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestOddsCmdErrors(t *testing.T) {
	a, _ := newTestApp(t, "")

	err := (&OddsCmd{Hands: []string{"AsAhKd"}, Iterations: 10}).Run(a)
	assert.ErrorIs(t, err, poker.ErrInvalidHoleCards)

	err = (&OddsCmd{Hands: []string{"AsXx"}, Iterations: 10}).Run(a)
	assert.ErrorIs(t, err, poker.ErrInvalidCard)

	err = (&OddsCmd{Hands: []string{"AsAh"}, Board: "AsKdQc", Iterations: 10}).Run(a)
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)

	err = (&OddsCmd{Hands: []string{"AsAh"}, Iterations: 0}).Run(a)
	assert.ErrorIs(t, err, poker.ErrNoIterations)
}
