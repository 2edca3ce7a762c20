package main

import (
	"fmt"
	"strings"

	"github.com/lox/handrank/internal/randutil"
	"github.com/lox/handrank/poker"
)

type DealCmd struct {
	Players int    `short:"p" help:"Number of players (overrides config)"`
	Seed    *int64 `short:"s" help:"Deterministic RNG seed (overrides config)"`
}

func (c *DealCmd) Run(a *app) error {
	players := a.cfg.Deal.Players
	if c.Players != 0 {
		players = c.Players
	}
	if players < 1 || players > 23 {
		return fmt.Errorf("players must be between 1 and 23, got %d", players)
	}

	seed := randutil.Seed(a.clock.Now(), c.Seed, a.cfg.Deal.Seed)
	a.logger.Debug("Dealing", "players", players, "seed", seed)

	e, err := a.evaluator()
	if err != nil {
		return err
	}

	deck := poker.NewDeck(randutil.New(seed))
	hands := make([][]poker.Card, players)
	for i := range hands {
		hands[i] = deck.Deal(2)
	}
	board := deck.Deal(5)

	summary, err := e.Summarize(board, hands)
	if err != nil {
		return err
	}
	printSummary(a, summary, seed)
	return nil
}

func printSummary(a *app, s *poker.Summary, seed int64) {
	fmt.Fprintf(a.out, "%s %s\n", headerStyle.Render("Deal"), dimStyle.Render(fmt.Sprintf("seed %d", seed)))
	for i, hand := range s.Hands {
		category := poker.CategorizeHoleCards(hand[0], hand[1])
		fmt.Fprintf(a.out, "  Player %d: %s %s\n", i+1,
			cardStyle.Render(poker.FormatCards(hand)),
			dimStyle.Render(string(category)))
	}

	for _, street := range s.Streets {
		fmt.Fprintf(a.out, "\n%s %s\n",
			headerStyle.Render(street.Street.String()),
			cardStyle.Render(poker.FormatCards(street.Board)))

		leaders := make(map[int]bool, len(street.Leaders))
		for _, p := range street.Leaders {
			leaders[p] = true
		}
		for _, st := range street.Standings {
			line := fmt.Sprintf("  Player %d: %-15s rank %4d  strength %5.1f%%",
				st.Player+1, st.Class, st.Rank, st.Strength*100)
			switch {
			case leaders[st.Player] && len(street.Leaders) > 1:
				line = tieStyle.Render(line + "  tie")
			case leaders[st.Player]:
				line = winStyle.Render(line + "  leads")
			}
			fmt.Fprintln(a.out, line)
		}
	}

	winners := s.Winners()
	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = fmt.Sprintf("Player %d", w+1)
	}
	fmt.Fprintf(a.out, "\n%s %s with %s\n",
		headerStyle.Render("Winner:"),
		winStyle.Render(strings.Join(names, ", ")),
		classStyle.Render(s.WinningClass().String()))
}
