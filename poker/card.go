package poker

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Card is a single playing card packed into 32 bits:
//
//	+--------+--------+--------+--------+
//	|xxxbbbbb|bbbbbbbb|cdhsrrrr|xxpppppp|
//	+--------+--------+--------+--------+
//
// b is a one-hot rank bit, cdhs is a one-hot suit, r is the rank index
// (deuce=0 ... ace=12) and p is the prime assigned to the rank.
type Card uint32

// Rank indexes
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suit indexes
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"

	suitMask    = 0xF000
	rankBitMask = 0x1FFF
	primeMask   = 0xFF
)

// ErrInvalidCard is returned when a card string cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// primes are assigned so that a product of primes identifies a multiset of ranks.
var primes = [13]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// NewCard creates a card from a rank index (0-12) and a suit index (0-3).
func NewCard(rank, suit uint8) Card {
	bitRank := uint32(1) << rank << 16
	suitBit := uint32(8>>suit) << 12
	return Card(bitRank | suitBit | uint32(rank)<<8 | primes[rank])
}

// Rank returns the rank index (0=Two ... 12=Ace).
func (c Card) Rank() uint8 {
	return uint8((c >> 8) & 0xF)
}

// Suit returns the suit index (0=Clubs ... 3=Spades).
func (c Card) Suit() uint8 {
	return uint8(3 - bits.TrailingZeros32(c.SuitBits()))
}

// SuitBits returns the one-hot suit nibble (s=1, h=2, d=4, c=8).
func (c Card) SuitBits() uint32 {
	return (uint32(c) >> 12) & 0xF
}

// BitRank returns the one-hot 13-bit rank pattern.
func (c Card) BitRank() uint32 {
	return (uint32(c) >> 16) & rankBitMask
}

// Prime returns the prime associated with the card's rank.
func (c Card) Prime() uint32 {
	return uint32(c) & 0x3F
}

// String returns the two character notation, e.g. "As" or "Td".
func (c Card) String() string {
	if c == 0 || c.Rank() > Ace || c.SuitBits() == 0 {
		return "??"
	}
	return string([]byte{rankChars[c.Rank()], suitChars[c.Suit()]})
}

// ParseCard parses a card in [Rank][Suit] notation such as "As", "Td" or "2c".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w %q: must be 2 characters", ErrInvalidCard, s)
	}

	rank := strings.IndexByte(rankChars, upper(s[0]))
	if rank < 0 {
		return 0, fmt.Errorf("%w %q: unknown rank %q", ErrInvalidCard, s, s[0])
	}

	suit := strings.IndexByte(suitChars, lower(s[1]))
	if suit < 0 {
		return 0, fmt.Errorf("%w %q: unknown suit %q", ErrInvalidCard, s, s[1])
	}

	return NewCard(uint8(rank), uint8(suit)), nil
}

// ParseCards parses a run of cards like "AsKsQsJsTs". Spaces are ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: card string length %d must be even", ErrInvalidCard, len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// FormatCards joins the notation of each card with spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// PrimeProductFromHand multiplies the prime field of every card.
func PrimeProductFromHand(cards []Card) uint32 {
	product := uint32(1)
	for _, c := range cards {
		product *= uint32(c) & primeMask
	}
	return product
}

// PrimeProductFromRankBits multiplies the primes of every rank set in a 13-bit pattern.
func PrimeProductFromRankBits(rankBits uint32) uint32 {
	product := uint32(1)
	for i := range primes {
		if rankBits&(1<<i) != 0 {
			product *= primes[i]
		}
	}
	return product
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// Hand is a bitset of cards, one bit per card at suit*13+rank.
type Hand uint64

// NewHand creates a hand from cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h.AddCard(c)
	}
	return h
}

func handBit(c Card) Hand {
	return Hand(1) << (uint(c.Suit())*13 + uint(c.Rank()))
}

// AddCard adds a card to the hand.
func (h *Hand) AddCard(c Card) {
	*h |= handBit(c)
}

// HasCard reports whether the hand contains c.
func (h Hand) HasCard(c Card) bool {
	return h&handBit(c) != 0
}

// CountCards returns the number of cards in the hand.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// GetSuitMask returns the 13-bit rank mask for one suit.
func (h Hand) GetSuitMask(suit uint8) uint16 {
	return uint16(uint64(h)>>(uint(suit)*13)) & rankBitMask
}
