package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lox/handrank/internal/randutil"
	"github.com/lox/handrank/poker"
)

type OddsCmd struct {
	Hands         []string `arg:"" help:"Player hands such as 'AcKd' 'QhJs'"`
	Board         string   `short:"b" help:"Community cards, e.g. 'Td7s8h'"`
	Possibilities bool     `short:"p" help:"Show the made hand class breakdown"`
	Iterations    int      `short:"i" default:"100000" help:"Number of Monte Carlo iterations"`
	Seed          *int64   `short:"s" help:"Random seed for reproducible results"`
}

func (c *OddsCmd) Run(a *app) error {
	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}
	var board []poker.Card
	if c.Board != "" {
		if board, err = poker.ParseCards(c.Board); err != nil {
			return fmt.Errorf("board: %w", err)
		}
	}

	seed := randutil.Seed(a.clock.Now(), c.Seed)

	e, err := a.evaluator()
	if err != nil {
		return err
	}

	start := a.clock.Now()
	results, err := e.Equity(hands, board, c.Iterations, randutil.New(seed))
	if err != nil {
		return err
	}
	a.logger.Debug("Equity run finished", "iterations", c.Iterations, "seed", seed, "duration", a.clock.Since(start))

	printOdds(a, results, board, c.Iterations, c.Possibilities)
	return nil
}

func parseHands(handStrings []string) ([][]poker.Card, error) {
	hands := make([][]poker.Card, 0, len(handStrings))
	for i, s := range handStrings {
		hand, err := poker.ParseCards(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(hand) != 2 {
			return nil, fmt.Errorf("hand %d: %w, got %d", i+1, poker.ErrInvalidHoleCards, len(hand))
		}
		hands = append(hands, hand)
	}
	return hands, nil
}

func printOdds(a *app, results []poker.EquityResult, board []poker.Card, iterations int, possibilities bool) {
	if len(board) > 0 {
		fmt.Fprintln(a.out, headerStyle.Render("board"))
		fmt.Fprintf(a.out, "%s\n\n", cardStyle.Render(poker.FormatCards(board)))
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("equity"))
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			cardStyle.Render(poker.FormatCards(r.Hand)),
			winStyle.Render(fmt.Sprintf("%.1f%%", r.WinRate()*100)),
			tieStyle.Render(fmt.Sprintf("%.1f%%", r.TieRate()*100)),
			fmt.Sprintf("%.1f%%", r.Equity()*100))
	}
	_ = w.Flush()

	if possibilities && len(results) > 0 {
		fmt.Fprintln(a.out)
		printPossibilities(a, results)
	}

	fmt.Fprintf(a.out, "\n%d iterations\n", iterations)
}

func printPossibilities(a *app, results []poker.EquityResult) {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, classStyle.Render("hand"))
	for _, r := range results {
		fmt.Fprintf(w, "\t%s", cardStyle.Render(poker.FormatCards(r.Hand)))
	}
	fmt.Fprintln(w)

	for class := poker.StraightFlush; class <= poker.HighCard; class++ {
		seen := false
		for _, r := range results {
			seen = seen || r.Classes[class] > 0
		}
		if !seen {
			continue
		}

		fmt.Fprint(w, classStyle.Render(class.String()))
		for _, r := range results {
			if n := r.Classes[class]; n > 0 {
				fmt.Fprintf(w, "\t%.1f%%", float64(n)/float64(r.Total)*100)
			} else {
				fmt.Fprint(w, "\t.")
			}
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
}

