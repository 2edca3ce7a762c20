package poker

import (
	rand "math/rand/v2"
)

// Deck is a standard deck, less any excluded cards, dealt from the top.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewDeck returns a shuffled deck without the excluded cards. A nil rng uses
// the global source.
func NewDeck(rng *rand.Rand, exclude ...Card) *Deck {
	skip := NewHand(exclude...)
	d := &Deck{cards: make([]Card, 0, 52), rng: rng}
	for suit := range uint8(4) {
		for rank := range uint8(13) {
			if c := NewCard(rank, suit); !skip.HasCard(c) {
				d.cards = append(d.cards, c)
			}
		}
	}
	d.Shuffle()
	return d
}

// Shuffle returns every dealt card and reorders the deck (Fisher-Yates).
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := intN(d.rng, i+1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes n cards from the top, or returns nil if fewer remain.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || n > d.CardsRemaining() {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:])
	d.next += n
	return cards
}

// DealOne deals a single card, or 0 when the deck is empty.
func (d *Deck) DealOne() Card {
	if d.CardsRemaining() == 0 {
		return 0
	}
	d.next++
	return d.cards[d.next-1]
}

// Sample fills dst with distinct random undealt cards without dealing them,
// reshuffling only the first len(dst) positions. It reports false when too
// few cards remain.
func (d *Deck) Sample(dst []Card) bool {
	rest := d.cards[d.next:]
	if len(dst) > len(rest) {
		return false
	}
	for i := range dst {
		j := i + intN(d.rng, len(rest)-i)
		rest[i], rest[j] = rest[j], rest[i]
		dst[i] = rest[i]
	}
	return true
}

func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
