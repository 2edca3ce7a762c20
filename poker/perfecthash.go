package poker

import (
	"fmt"

	"github.com/opencoff/go-chd"
)

// DefaultLoadFactor is the CHD load factor used when none is configured.
const DefaultLoadFactor = 0.9

// rankIndex resolves five-card fingerprints to ranks.
type rankIndex interface {
	Flush(product uint32) (HandRank, bool)
	Unsuited(product uint32) (HandRank, bool)
}

var (
	_ rankIndex = (*LookupTable)(nil)
	_ rankIndex = (*PerfectHashIndex)(nil)
)

type phSlot struct {
	product uint32
	rank    HandRank
}

// phTable is a perfect hash over one fingerprint map. The CHD table is sized
// to a power of two above n/load, so slots outnumber keys and some stay empty.
// CHD maps keys outside the build set to arbitrary slots, so every hit is
// checked against the stored product. Empty slots have rank 0.
type phTable struct {
	mph   *chd.Chd
	slots []phSlot
}

func newPHTable(m map[uint32]HandRank, load float64) (*phTable, error) {
	b, err := chd.New()
	if err != nil {
		return nil, fmt.Errorf("create chd builder: %w", err)
	}
	for product := range m {
		if err := b.Add(uint64(product)); err != nil {
			return nil, fmt.Errorf("add product %d: %w", product, err)
		}
	}

	mph, err := b.Freeze(load)
	if err != nil {
		return nil, fmt.Errorf("freeze chd: %w", err)
	}

	t := &phTable{mph: mph, slots: make([]phSlot, mph.Len())}
	for product, rank := range m {
		idx := mph.Find(uint64(product))
		if idx >= uint64(len(t.slots)) {
			return nil, fmt.Errorf("%w: chd slot %d out of range for product %d", ErrTableCorrupt, idx, product)
		}
		if t.slots[idx].rank != 0 {
			return nil, fmt.Errorf("%w: chd slot %d collides for products %d and %d",
				ErrTableCorrupt, idx, t.slots[idx].product, product)
		}
		t.slots[idx] = phSlot{product: product, rank: rank}
	}
	return t, nil
}

func (t *phTable) find(product uint32) (HandRank, bool) {
	idx := t.mph.Find(uint64(product))
	if idx >= uint64(len(t.slots)) {
		return 0, false
	}
	s := t.slots[idx]
	if s.rank == 0 || s.product != product {
		return 0, false
	}
	return s.rank, true
}

// PerfectHashIndex is a read-only view of a LookupTable backed by
// perfect hashes and dense slot arrays instead of Go maps.
type PerfectHashIndex struct {
	flush    *phTable
	unsuited *phTable
}

// NewPerfectHashIndex indexes both maps of t. load is the CHD load factor and
// values between 0.75 and 0.9 build quickly. Values outside (0, 1] use
// DefaultLoadFactor.
func NewPerfectHashIndex(t *LookupTable, load float64) (*PerfectHashIndex, error) {
	if load <= 0 || load > 1 {
		load = DefaultLoadFactor
	}

	flush, err := newPHTable(t.flush, load)
	if err != nil {
		return nil, fmt.Errorf("index flush table: %w", err)
	}
	unsuited, err := newPHTable(t.unsuited, load)
	if err != nil {
		return nil, fmt.Errorf("index unsuited table: %w", err)
	}
	return &PerfectHashIndex{flush: flush, unsuited: unsuited}, nil
}

// Flush looks up a flush fingerprint.
func (p *PerfectHashIndex) Flush(product uint32) (HandRank, bool) {
	return p.flush.find(product)
}

// Unsuited looks up a non-flush fingerprint.
func (p *PerfectHashIndex) Unsuited(product uint32) (HandRank, bool) {
	return p.unsuited.find(product)
}
