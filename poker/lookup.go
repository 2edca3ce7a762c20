package poker

import (
	"errors"
	"fmt"
	"sort"
)

// ErrTableCorrupt is returned when a lookup table fails validation while it
// is being built or loaded.
var ErrTableCorrupt = errors.New("lookup table corrupt")

// straightFlushPatterns are the ten straights in rank order, royal first. The
// wheel (A-2-3-4-5) is last and is the only pattern whose bits are not
// contiguous.
var straightFlushPatterns = [straightFlushCount]uint32{
	0b1111100000000, // royal flush
	0b0111110000000,
	0b0011111000000,
	0b0001111100000,
	0b0000111110000,
	0b0000011111000,
	0b0000001111100,
	0b0000000111110,
	0b0000000011111,
	0b1000000001111, // 5 high
}

// backwardsRanks lists rank indexes from Ace down to Two.
var backwardsRanks = [13]uint8{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}

// TableKind names one of the two fingerprint maps.
type TableKind uint8

const (
	FlushTable TableKind = iota
	UnsuitedTable
)

func (k TableKind) String() string {
	switch k {
	case FlushTable:
		return "flush"
	case UnsuitedTable:
		return "unsuited"
	default:
		return "unknown"
	}
}

// Entry is one fingerprint to rank mapping.
type Entry struct {
	Table   TableKind
	Product uint32
	Rank    HandRank
}

// LookupTable maps five-card prime products to hand ranks.
//
// Flush holds straight flushes and flushes, keyed by the product of the five
// distinct rank primes. Unsuited holds everything else. Every rank in
// [1, MaxHighCard] appears exactly once across the two maps. A table is
// immutable once returned and safe to share between goroutines.
type LookupTable struct {
	flush    map[uint32]HandRank
	unsuited map[uint32]HandRank
}

// NewLookupTable builds and validates the table.
func NewLookupTable() (*LookupTable, error) {
	t := newEmptyTable()

	if err := t.flushes(); err != nil {
		return nil, err
	}
	if err := t.multiples(); err != nil {
		return nil, err
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func newEmptyTable() *LookupTable {
	return &LookupTable{
		flush:    make(map[uint32]HandRank, straightFlushCount+flushCount),
		unsuited: make(map[uint32]HandRank, int(MaxHighCard)-straightFlushCount-flushCount),
	}
}

// Flush looks up the rank of a five-card flush by the product of its rank primes.
func (t *LookupTable) Flush(product uint32) (HandRank, bool) {
	r, ok := t.flush[product]
	return r, ok
}

// Unsuited looks up the rank of a non-flush five-card hand by its prime product.
func (t *LookupTable) Unsuited(product uint32) (HandRank, bool) {
	r, ok := t.unsuited[product]
	return r, ok
}

// Len returns the number of entries in the given map.
func (t *LookupTable) Len(kind TableKind) int {
	switch kind {
	case FlushTable:
		return len(t.flush)
	case UnsuitedTable:
		return len(t.unsuited)
	default:
		return 0
	}
}

// Counts returns the number of entries per hand class across both maps.
func (t *LookupTable) Counts() map[HandClass]int {
	counts := make(map[HandClass]int, len(classBounds))
	for _, m := range []map[uint32]HandRank{t.flush, t.unsuited} {
		for _, r := range m {
			counts[r.Class()]++
		}
	}
	return counts
}

// Entries returns every mapping ordered by rank.
func (t *LookupTable) Entries() []Entry {
	entries := make([]Entry, 0, len(t.flush)+len(t.unsuited))
	for p, r := range t.flush {
		entries = append(entries, Entry{Table: FlushTable, Product: p, Rank: r})
	}
	for p, r := range t.unsuited {
		entries = append(entries, Entry{Table: UnsuitedTable, Product: p, Rank: r})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Rank < entries[j].Rank
	})
	return entries
}

func (t *LookupTable) insert(kind TableKind, product uint32, rank HandRank) error {
	m := t.flush
	if kind == UnsuitedTable {
		m = t.unsuited
	}
	if prev, ok := m[product]; ok {
		return fmt.Errorf("%w: %s product %d already mapped to rank %d, cannot assign %d",
			ErrTableCorrupt, kind, product, prev, rank)
	}
	m[product] = rank
	return nil
}

// flushes fills straight flushes and flushes, then reuses the same bit
// patterns for straights and high cards, which differ only in suitedness.
func (t *LookupTable) flushes() error {
	seq := NewBitSequence(0b11111)

	// The generator starts after its seed, so one fewer draw than there are
	// distinct-rank patterns covers every pattern except 0b11111, which is a
	// straight anyway.
	flushes := make([]uint32, 0, flushCount)
	for range flushCount + straightFlushCount - 1 {
		f := seq.Next()
		if !isStraightPattern(f) {
			flushes = append(flushes, f)
		}
	}
	if len(flushes) != flushCount {
		return fmt.Errorf("%w: generated %d flush patterns, want %d", ErrTableCorrupt, len(flushes), flushCount)
	}

	// Generated weakest first.
	for i, j := 0, len(flushes)-1; i < j; i, j = i+1, j-1 {
		flushes[i], flushes[j] = flushes[j], flushes[i]
	}

	rank := HandRank(1)
	for _, sf := range straightFlushPatterns {
		if err := t.insert(FlushTable, PrimeProductFromRankBits(sf), rank); err != nil {
			return err
		}
		rank++
	}

	rank = MaxFullHouse + 1
	for _, f := range flushes {
		if err := t.insert(FlushTable, PrimeProductFromRankBits(f), rank); err != nil {
			return err
		}
		rank++
	}

	return t.straightsAndHighCards(straightFlushPatterns[:], flushes)
}

func isStraightPattern(bits uint32) bool {
	for _, sf := range straightFlushPatterns {
		if bits^sf == 0 {
			return true
		}
	}
	return false
}

func (t *LookupTable) straightsAndHighCards(straights, highCards []uint32) error {
	rank := MaxFlush + 1
	for _, s := range straights {
		if err := t.insert(UnsuitedTable, PrimeProductFromRankBits(s), rank); err != nil {
			return err
		}
		rank++
	}

	rank = MaxPair + 1
	for _, h := range highCards {
		if err := t.insert(UnsuitedTable, PrimeProductFromRankBits(h), rank); err != nil {
			return err
		}
		rank++
	}
	return nil
}

// multiples fills every hand with a repeated rank. Each loop walks ranks from
// Ace down so ranks are handed out strongest first.
func (t *LookupTable) multiples() error {
	// Four of a kind
	rank := MaxStraightFlush + 1
	for _, quad := range backwardsRanks {
		for _, kicker := range without(quad) {
			product := pow(primes[quad], 4) * primes[kicker]
			if err := t.insert(UnsuitedTable, product, rank); err != nil {
				return err
			}
			rank++
		}
	}

	// Full house
	rank = MaxFourOfAKind + 1
	for _, trips := range backwardsRanks {
		for _, pair := range without(trips) {
			product := pow(primes[trips], 3) * pow(primes[pair], 2)
			if err := t.insert(UnsuitedTable, product, rank); err != nil {
				return err
			}
			rank++
		}
	}

	// Three of a kind
	rank = MaxStraight + 1
	for _, trips := range backwardsRanks {
		kickers := without(trips)
		for a := 0; a < len(kickers); a++ {
			for b := a + 1; b < len(kickers); b++ {
				product := pow(primes[trips], 3) * primes[kickers[a]] * primes[kickers[b]]
				if err := t.insert(UnsuitedTable, product, rank); err != nil {
					return err
				}
				rank++
			}
		}
	}

	// Two pair
	rank = MaxThreeOfAKind + 1
	for a := 0; a < len(backwardsRanks); a++ {
		for b := a + 1; b < len(backwardsRanks); b++ {
			high, low := backwardsRanks[a], backwardsRanks[b]
			for _, kicker := range without(high, low) {
				product := pow(primes[high], 2) * pow(primes[low], 2) * primes[kicker]
				if err := t.insert(UnsuitedTable, product, rank); err != nil {
					return err
				}
				rank++
			}
		}
	}

	// Pair
	rank = MaxTwoPair + 1
	for _, pair := range backwardsRanks {
		kickers := without(pair)
		for a := 0; a < len(kickers); a++ {
			for b := a + 1; b < len(kickers); b++ {
				for c := b + 1; c < len(kickers); c++ {
					product := pow(primes[pair], 2) * primes[kickers[a]] * primes[kickers[b]] * primes[kickers[c]]
					if err := t.insert(UnsuitedTable, product, rank); err != nil {
						return err
					}
					rank++
				}
			}
		}
	}

	return nil
}

// without returns backwardsRanks minus the excluded ranks, still Ace first.
func without(excluded ...uint8) []uint8 {
	out := make([]uint8, 0, len(backwardsRanks))
	for _, r := range backwardsRanks {
		skip := false
		for _, ex := range excluded {
			if r == ex {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, r)
		}
	}
	return out
}

func pow(base uint32, exp int) uint32 {
	result := uint32(1)
	for range exp {
		result *= base
	}
	return result
}

// expectedCounts is the number of distinct hand values in each class.
var expectedCounts = map[HandClass]int{
	StraightFlush: straightFlushCount,
	FourOfAKind:   fourOfAKindCount,
	FullHouse:     fullHouseCount,
	Flush:         flushCount,
	Straight:      straightCount,
	ThreeOfAKind:  threeOfAKindCount,
	TwoPair:       twoPairCount,
	Pair:          onePairCount,
	HighCard:      highCardCount,
}

// validate checks that every rank is assigned exactly once, that each class
// has its expected size and that flush classes live only in the flush map.
func (t *LookupTable) validate() error {
	var seen [MaxHighCard + 1]bool

	check := func(kind TableKind, m map[uint32]HandRank) error {
		for product, r := range m {
			if r < 1 || r > MaxHighCard {
				return fmt.Errorf("%w: %s product %d has out of range rank %d", ErrTableCorrupt, kind, product, r)
			}
			if seen[r] {
				return fmt.Errorf("%w: rank %d assigned twice", ErrTableCorrupt, r)
			}
			seen[r] = true

			class := r.Class()
			suited := class == StraightFlush || class == Flush
			if suited != (kind == FlushTable) {
				return fmt.Errorf("%w: %s rank %d stored in %s map", ErrTableCorrupt, class, r, kind)
			}
		}
		return nil
	}

	if err := check(FlushTable, t.flush); err != nil {
		return err
	}
	if err := check(UnsuitedTable, t.unsuited); err != nil {
		return err
	}

	for r := HandRank(1); r <= MaxHighCard; r++ {
		if !seen[r] {
			return fmt.Errorf("%w: rank %d never assigned", ErrTableCorrupt, r)
		}
	}

	counts := t.Counts()
	for class, want := range expectedCounts {
		if got := counts[class]; got != want {
			return fmt.Errorf("%w: %s has %d entries, want %d", ErrTableCorrupt, class, got, want)
		}
	}
	return nil
}
