package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/lox/handrank/poker"
)

type TableCmd struct {
	Dump  TableDumpCmd  `cmd:"" help:"Write the lookup table as CSV"`
	Stats TableStatsCmd `cmd:"" help:"Print entry counts per hand class"`
}

type TableDumpCmd struct {
	Out string `short:"o" help:"Output file (defaults to stdout)"`
}

func (c *TableDumpCmd) Run(a *app) error {
	e, err := a.evaluator()
	if err != nil {
		return err
	}
	if c.Out == "" {
		return e.Table().Dump(a.out)
	}
	if err := writeTableFile(c.Out, e.Table()); err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}
	a.logger.Info("Wrote lookup table", "path", c.Out, "entries", len(e.Table().Entries()))
	return nil
}

type TableStatsCmd struct{}

func (c *TableStatsCmd) Run(a *app) error {
	e, err := a.evaluator()
	if err != nil {
		return err
	}
	table := e.Table()
	counts := table.Counts()

	fmt.Fprintln(a.out, headerStyle.Render("Lookup table"))
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CLASS\tRANKS\tENTRIES")
	for class := poker.StraightFlush; class <= poker.HighCard; class++ {
		lo, hi := class.Bounds()
		fmt.Fprintf(w, "%s\t%d-%d\t%d\n", class, lo, hi, counts[class])
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "flush map %d, unsuited map %d\n",
		table.Len(poker.FlushTable), table.Len(poker.UnsuitedTable))
	return nil
}
