package poker

import (
	"errors"
	"fmt"
)

// HandRank represents the strength of a poker hand: 1 is a royal flush,
// 7462 is 7-5-4-3-2 offsuit. Lower values are stronger.
type HandRank uint16

// HandClass is one of the nine hand categories, strongest first.
type HandClass uint8

const (
	StraightFlush HandClass = iota + 1
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	Pair
	HighCard
)

// Distinct hand values per class.
const (
	straightFlushCount = 10
	fourOfAKindCount   = 13 * 12
	fullHouseCount     = 13 * 12
	flushCount         = 1277
	straightCount      = 10
	threeOfAKindCount  = 13 * 66
	twoPairCount       = 78 * 11
	onePairCount       = 13 * 220
	highCardCount      = 1277
)

// Worst (numerically largest) rank in each class.
const (
	MaxStraightFlush = HandRank(straightFlushCount)
	MaxFourOfAKind   = MaxStraightFlush + fourOfAKindCount
	MaxFullHouse     = MaxFourOfAKind + fullHouseCount
	MaxFlush         = MaxFullHouse + flushCount
	MaxStraight      = MaxFlush + straightCount
	MaxThreeOfAKind  = MaxStraight + threeOfAKindCount
	MaxTwoPair       = MaxThreeOfAKind + twoPairCount
	MaxPair          = MaxTwoPair + onePairCount
	MaxHighCard      = MaxPair + highCardCount
)

// ErrInvalidRank is returned when a rank falls outside [1, MaxHighCard].
var ErrInvalidRank = errors.New("invalid hand rank")

// classBounds holds the inclusive upper bound of each class, indexed by HandClass-1.
var classBounds = [...]HandRank{
	MaxStraightFlush,
	MaxFourOfAKind,
	MaxFullHouse,
	MaxFlush,
	MaxStraight,
	MaxThreeOfAKind,
	MaxTwoPair,
	MaxPair,
	MaxHighCard,
}

var classNames = [...]string{
	StraightFlush: "Straight Flush",
	FourOfAKind:   "Four of a Kind",
	FullHouse:     "Full House",
	Flush:         "Flush",
	Straight:      "Straight",
	ThreeOfAKind:  "Three of a Kind",
	TwoPair:       "Two Pair",
	Pair:          "Pair",
	HighCard:      "High Card",
}

// Classify maps a rank to its hand class.
func Classify(hr HandRank) (HandClass, error) {
	if hr < 1 || hr > MaxHighCard {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRank, hr)
	}
	for i, hi := range classBounds {
		if hr <= hi {
			return HandClass(i + 1), nil
		}
	}
	return HighCard, nil
}

// Bounds returns the inclusive rank range covered by the class.
func (c HandClass) Bounds() (lo, hi HandRank) {
	if !c.Valid() {
		return 0, 0
	}
	hi = classBounds[c-1]
	if c == StraightFlush {
		return 1, hi
	}
	return classBounds[c-2] + 1, hi
}

// Valid reports whether c is one of the nine classes.
func (c HandClass) Valid() bool {
	return c >= StraightFlush && c <= HighCard
}

// String returns the human-readable class name.
func (c HandClass) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return classNames[c]
}

// ClassName is the function form of HandClass.String.
func ClassName(c HandClass) string {
	return c.String()
}

// Class returns the hand class, or 0 for an out-of-range rank.
func (hr HandRank) Class() HandClass {
	c, err := Classify(hr)
	if err != nil {
		return 0
	}
	return c
}

// String returns the class name of the rank.
func (hr HandRank) String() string {
	return hr.Class().String()
}

// Compare returns 1 if hr is stronger than other, -1 if weaker and 0 on a tie.
func (hr HandRank) Compare(other HandRank) int {
	if hr < other {
		return 1
	} else if hr > other {
		return -1
	}
	return 0
}

// Percentile scales a rank into [0, 1]; lower is stronger.
func Percentile(hr HandRank) float64 {
	return float64(hr) / float64(MaxHighCard)
}

// Strength returns 1 - Percentile(hr); higher is stronger.
func Strength(hr HandRank) float64 {
	return 1 - Percentile(hr)
}
