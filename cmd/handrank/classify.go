package main

import (
	"fmt"
	"math"

	"github.com/lox/handrank/poker"
)

type ClassifyCmd struct {
	Rank int `arg:"" help:"Hand rank from 1 (royal flush) to 7462 (seven high)"`
}

func (c *ClassifyCmd) Run(a *app) error {
	if c.Rank < 0 || c.Rank > math.MaxUint16 {
		return fmt.Errorf("%w: %d", poker.ErrInvalidRank, c.Rank)
	}
	rank := poker.HandRank(c.Rank)
	class, err := poker.Classify(rank)
	if err != nil {
		return err
	}

	lo, hi := class.Bounds()
	fmt.Fprintf(a.out, "rank %d  %s  %s  percentile %.4f\n",
		rank,
		classStyle.Render(class.String()),
		dimStyle.Render(fmt.Sprintf("(%d-%d)", lo, hi)),
		poker.Percentile(rank))
	return nil
}
