package poker

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBoard     = errors.New("board must have 5 cards")
	ErrInvalidHoleCards = errors.New("each hand must have 2 hole cards")
	ErrDuplicateCard    = errors.New("duplicate card")
)

// Street is a stage of the board reveal.
type Street uint8

const (
	Flop Street = iota
	Turn
	River
)

var streets = [...]Street{Flop, Turn, River}

func (s Street) String() string {
	switch s {
	case Flop:
		return "FLOP"
	case Turn:
		return "TURN"
	case River:
		return "RIVER"
	default:
		return "UNKNOWN"
	}
}

// BoardSize is the number of community cards visible on the street.
func (s Street) BoardSize() int {
	return int(s) + 3
}

// PlayerStanding is one player's made hand on a street.
type PlayerStanding struct {
	Player   int
	Rank     HandRank
	Class    HandClass
	Strength float64
}

// StreetSummary records every player's standing and the leaders on a street.
// Leaders holds more than one player index on a tie.
type StreetSummary struct {
	Street    Street
	Board     []Card
	Standings []PlayerStanding
	Leaders   []int
}

// Summary walks a finished board street by street.
type Summary struct {
	Hands   [][]Card
	Streets []StreetSummary
}

// Winners returns the players leading on the river.
func (s *Summary) Winners() []int {
	if len(s.Streets) == 0 {
		return nil
	}
	return s.Streets[len(s.Streets)-1].Leaders
}

// WinningClass returns the class the river winners hold.
func (s *Summary) WinningClass() HandClass {
	if len(s.Streets) == 0 {
		return 0
	}
	river := s.Streets[len(s.Streets)-1]
	if len(river.Leaders) == 0 {
		return 0
	}
	return river.Standings[river.Leaders[0]].Class
}

// Summarize evaluates each two-card hand against the flop, turn and river of
// a five-card board, given in the order it was dealt.
func (e *Evaluator) Summarize(board []Card, hands [][]Card) (*Summary, error) {
	if len(board) != 5 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBoard, len(board))
	}

	seen := NewHand(board...)
	if seen.CountCards() != len(board) {
		return nil, fmt.Errorf("%w on board [%s]", ErrDuplicateCard, FormatCards(board))
	}
	for i, hand := range hands {
		if len(hand) != 2 {
			return nil, fmt.Errorf("%w: player %d has %d", ErrInvalidHoleCards, i+1, len(hand))
		}
		for _, c := range hand {
			if seen.HasCard(c) {
				return nil, fmt.Errorf("%w %s in player %d hand", ErrDuplicateCard, c, i+1)
			}
			seen.AddCard(c)
		}
	}

	summary := &Summary{Hands: hands, Streets: make([]StreetSummary, 0, len(streets))}
	for _, street := range streets {
		visible := board[:street.BoardSize()]
		ss := StreetSummary{
			Street:    street,
			Board:     visible,
			Standings: make([]PlayerStanding, 0, len(hands)),
		}

		best := MaxHighCard + 1
		for player, hand := range hands {
			rank, err := e.EvaluateHand(hand, visible)
			if err != nil {
				return nil, fmt.Errorf("%s player %d: %w", street, player+1, err)
			}
			class, err := Classify(rank)
			if err != nil {
				return nil, err
			}
			ss.Standings = append(ss.Standings, PlayerStanding{
				Player:   player,
				Rank:     rank,
				Class:    class,
				Strength: Strength(rank),
			})

			switch {
			case rank < best:
				best = rank
				ss.Leaders = []int{player}
			case rank == best:
				ss.Leaders = append(ss.Leaders, player)
			}
		}
		summary.Streets = append(summary.Streets, ss)
	}
	return summary, nil
}
