package main

import (
	"fmt"
	"strings"

	"github.com/lox/handrank/poker"
)

type EvalCmd struct {
	Cards []string `arg:"" help:"Cards such as 'AsKsQsJsTs' or 'As Ks Qs Js Ts'"`
}

func (c *EvalCmd) Run(a *app) error {
	cards, err := poker.ParseCards(strings.Join(c.Cards, ""))
	if err != nil {
		return err
	}

	e, err := a.evaluator()
	if err != nil {
		return err
	}
	rank, err := e.Evaluate(cards)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s  %s  rank %d  strength %.2f%%\n",
		cardStyle.Render(poker.FormatCards(cards)),
		classStyle.Render(rank.String()),
		rank,
		poker.Strength(rank)*100)
	return nil
}
