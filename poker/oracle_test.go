package poker

import (
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"

	"github.com/lox/handrank/internal/randutil"
)

var phSuits = [4]ph.Suit{ph.Club, ph.Diamond, ph.Heart, ph.Spade}

// toPH converts to paulhankin/poker, whose ranks run 1..13 with Ace as 1 and
// whose scores grow with hand strength.
func toPH(t *testing.T, c Card) ph.Card {
	t.Helper()
	r := ph.Rank(c.Rank() + 2)
	if c.Rank() == Ace {
		r = 1
	}
	card, err := ph.MakeCard(phSuits[c.Suit()], r)
	require.NoError(t, err)
	return card
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func TestEvaluateAgreesWithIndependentEvaluator(t *testing.T) {
	t.Parallel()
	e := newTestEvaluator(t)
	deck := NewDeck(randutil.New(31337))

	type scored struct {
		cards  []Card
		ours   HandRank
		theirs int16
	}

	deal := func(size int) scored {
		deck.Shuffle()
		cards := deck.Deal(size)
		ours, err := e.Evaluate(cards)
		require.NoError(t, err)

		var theirs int16
		if size == 5 {
			var h [5]ph.Card
			for i, c := range cards {
				h[i] = toPH(t, c)
			}
			theirs = ph.Eval5(&h)
		} else {
			var h [7]ph.Card
			for i, c := range cards {
				h[i] = toPH(t, c)
			}
			theirs = ph.Eval7(&h)
		}
		return scored{cards: cards, ours: ours, theirs: theirs}
	}

	for _, size := range []int{5, 7} {
		prev := deal(size)
		for range 5000 {
			next := deal(size)
			// Lower rank is stronger here, higher score is stronger there.
			want := sign(int(next.theirs) - int(prev.theirs))
			got := sign(int(prev.ours) - int(next.ours))
			require.Equal(t, want, got, "%s (%d) vs %s (%d)",
				FormatCards(prev.cards), prev.ours, FormatCards(next.cards), next.ours)
			prev = next
		}
	}
}
