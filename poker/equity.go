package poker

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

var ErrNoIterations = errors.New("iterations must be positive")

// EquityResult is one player's tally over a Monte Carlo run.
type EquityResult struct {
	Hand  []Card
	Wins  int
	Ties  int
	Total int
	// Share is the pot fraction won, splitting ties evenly among the tied.
	Share float64
	// Classes counts the final made hand per class.
	Classes map[HandClass]int
}

// WinRate is the fraction of outright wins.
func (r EquityResult) WinRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Total)
}

// TieRate is the fraction of split pots.
func (r EquityResult) TieRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Ties) / float64(r.Total)
}

// Equity is the expected pot share.
func (r EquityResult) Equity() float64 {
	if r.Total == 0 {
		return 0
	}
	return r.Share / float64(r.Total)
}

// Equity runs iterations random completions of a partial board (0 to 5 cards)
// and tallies each two-card hand's results. A nil rng uses the global source.
func (e *Evaluator) Equity(hands [][]Card, board []Card, iterations int, rng *rand.Rand) ([]EquityResult, error) {
	if len(board) > 5 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBoard, len(board))
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoIterations, iterations)
	}

	excluded := append([]Card(nil), board...)
	used := NewHand(board...)
	if used.CountCards() != len(board) {
		return nil, fmt.Errorf("%w on board [%s]", ErrDuplicateCard, FormatCards(board))
	}
	for i, hand := range hands {
		if len(hand) != 2 {
			return nil, fmt.Errorf("%w: player %d has %d", ErrInvalidHoleCards, i+1, len(hand))
		}
		for _, c := range hand {
			if used.HasCard(c) {
				return nil, fmt.Errorf("%w %s in player %d hand", ErrDuplicateCard, c, i+1)
			}
			used.AddCard(c)
		}
		excluded = append(excluded, hand...)
	}

	deck := NewDeck(rng, excluded...)
	needed := 5 - len(board)
	if needed > deck.CardsRemaining() {
		return nil, fmt.Errorf("%w: %d cards left to complete the board", ErrInvalidBoard, deck.CardsRemaining())
	}

	results := make([]EquityResult, len(hands))
	for i := range results {
		results[i] = EquityResult{Hand: hands[i], Total: iterations, Classes: make(map[HandClass]int)}
	}

	full := make([]Card, 5)
	copy(full, board)
	seven := make([]Card, 7)
	ranks := make([]HandRank, len(hands))

	for range iterations {
		deck.Sample(full[len(board):])

		best := MaxHighCard + 1
		for p, hole := range hands {
			copy(seven, hole)
			copy(seven[2:], full)
			rank, err := e.Evaluate(seven)
			if err != nil {
				return nil, fmt.Errorf("player %d: %w", p+1, err)
			}
			ranks[p] = rank
			results[p].Classes[rank.Class()]++
			best = min(best, rank)
		}

		winners := 0
		for _, rank := range ranks {
			if rank == best {
				winners++
			}
		}
		for p, rank := range ranks {
			if rank != best {
				continue
			}
			if winners == 1 {
				results[p].Wins++
			} else {
				results[p].Ties++
			}
			results[p].Share += 1 / float64(winners)
		}
	}
	return results, nil
}
