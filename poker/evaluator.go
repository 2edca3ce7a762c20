package poker

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

var (
	// ErrInvalidHandSize is returned for hands that are not 5, 6 or 7 cards.
	ErrInvalidHandSize = errors.New("invalid hand size")
	// ErrLookupMiss is returned when a fingerprint is in neither map, which
	// only happens for duplicated or corrupt cards.
	ErrLookupMiss = errors.New("hand fingerprint not found")
)

// HandSizeError reports the size of a rejected hand.
type HandSizeError struct {
	Size int
}

func (e *HandSizeError) Error() string {
	return fmt.Sprintf("%v: got %d cards, want 5, 6 or 7", ErrInvalidHandSize, e.Size)
}

func (e *HandSizeError) Unwrap() error {
	return ErrInvalidHandSize
}

// Evaluator ranks poker hands against a prebuilt lookup table. It holds no
// mutable state and can be shared by any number of goroutines.
type Evaluator struct {
	table *LookupTable
	index rankIndex
}

type options struct {
	logger      *log.Logger
	clock       quartz.Clock
	table       *LookupTable
	perfectHash bool
	loadFactor  float64
}

// Option configures NewEvaluator.
type Option func(*options)

// WithLogger sets the logger used while building the table.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock sets the clock used to time table construction.
func WithClock(clock quartz.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithTable reuses an already built or loaded table instead of building one.
func WithTable(t *LookupTable) Option {
	return func(o *options) {
		o.table = t
	}
}

// WithPerfectHash serves lookups from a go-chd perfect hash built
// with the given load factor.
func WithPerfectHash(load float64) Option {
	return func(o *options) {
		o.perfectHash = true
		o.loadFactor = load
	}
}

// NewEvaluator builds the lookup table and returns an evaluator over it.
func NewEvaluator(opts ...Option) (*Evaluator, error) {
	o := options{
		logger:     log.NewWithOptions(io.Discard, log.Options{}),
		clock:      quartz.NewReal(),
		loadFactor: DefaultLoadFactor,
	}
	for _, opt := range opts {
		opt(&o)
	}

	start := o.clock.Now()

	table := o.table
	if table == nil {
		var err error
		if table, err = NewLookupTable(); err != nil {
			return nil, fmt.Errorf("build lookup table: %w", err)
		}
	}

	var index rankIndex = table
	if o.perfectHash {
		ph, err := NewPerfectHashIndex(table, o.loadFactor)
		if err != nil {
			return nil, fmt.Errorf("build perfect hash index: %w", err)
		}
		index = ph
	}

	o.logger.Debug("Lookup table ready",
		"flush", table.Len(FlushTable),
		"unsuited", table.Len(UnsuitedTable),
		"perfect_hash", o.perfectHash,
		"prebuilt", o.table != nil,
		"duration", o.clock.Since(start))

	return &Evaluator{table: table, index: index}, nil
}

// MustNewEvaluator is NewEvaluator that panics on error.
func MustNewEvaluator(opts ...Option) *Evaluator {
	e, err := NewEvaluator(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Table returns the lookup table backing the evaluator.
func (e *Evaluator) Table() *LookupTable {
	return e.table
}

// Evaluate returns the rank of the best five-card hand that can be made from
// cards. Five cards are looked up directly; six and seven cards take the
// minimum over every five-card subset.
func (e *Evaluator) Evaluate(cards []Card) (HandRank, error) {
	switch len(cards) {
	case 5:
		return e.five(cards[0], cards[1], cards[2], cards[3], cards[4])
	case 6, 7:
		return e.bestOfFive(cards)
	default:
		return 0, &HandSizeError{Size: len(cards)}
	}
}

// EvaluateHand evaluates hole cards together with the board.
func (e *Evaluator) EvaluateHand(hole, board []Card) (HandRank, error) {
	all := make([]Card, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)
	return e.Evaluate(all)
}

// Describe returns the class name of the evaluated hand.
func (e *Evaluator) Describe(cards []Card) (string, error) {
	rank, err := e.Evaluate(cards)
	if err != nil {
		return "", err
	}
	return rank.String(), nil
}

func (e *Evaluator) five(c0, c1, c2, c3, c4 Card) (HandRank, error) {
	// All five share a suit bit.
	if c0&c1&c2&c3&c4&suitMask != 0 {
		handOR := uint32(c0|c1|c2|c3|c4) >> 16
		product := PrimeProductFromRankBits(handOR)
		if rank, ok := e.index.Flush(product); ok {
			return rank, nil
		}
		return 0, missError(FlushTable, product, c0, c1, c2, c3, c4)
	}

	product := (uint32(c0) & primeMask) * (uint32(c1) & primeMask) * (uint32(c2) & primeMask) *
		(uint32(c3) & primeMask) * (uint32(c4) & primeMask)
	if rank, ok := e.index.Unsuited(product); ok {
		return rank, nil
	}
	return 0, missError(UnsuitedTable, product, c0, c1, c2, c3, c4)
}

func (e *Evaluator) bestOfFive(cards []Card) (HandRank, error) {
	n := len(cards)
	best := MaxHighCard
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for f := d + 1; f < n; f++ {
						rank, err := e.five(cards[a], cards[b], cards[c], cards[d], cards[f])
						if err != nil {
							return 0, err
						}
						if rank < best {
							best = rank
						}
					}
				}
			}
		}
	}
	return best, nil
}

func missError(kind TableKind, product uint32, cards ...Card) error {
	return fmt.Errorf("%w: %s product %d for [%s]", ErrLookupMiss, kind, product, FormatCards(cards))
}
