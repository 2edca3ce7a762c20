package poker

// BitSequence yields integers with the same number of set bits as its seed in
// increasing numeric order. For 13-bit rank patterns that is weakest-first
// ordering of five distinct ranks.
//
// The sequence never terminates on its own; callers decide how many values to
// draw.
type BitSequence struct {
	seed uint32
	cur  uint32
}

// NewBitSequence starts a sequence after seed. seed must be non-zero.
func NewBitSequence(seed uint32) *BitSequence {
	return &BitSequence{seed: seed, cur: seed}
}

// Next returns the next permutation of the current set bits.
func (s *BitSequence) Next() uint32 {
	s.cur = nextBitPermutation(s.cur)
	return s.cur
}

// Reset rewinds the sequence back to its seed.
func (s *BitSequence) Reset() {
	s.cur = s.seed
}

// Take draws n values.
func (s *BitSequence) Take(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = s.Next()
	}
	return out
}

// nextBitPermutation is the "next lexicographic permutation of bits" trick:
// add the lowest set bit to carry into the next free position, then refill
// the low end with the ones that were consumed.
func nextBitPermutation(v uint32) uint32 {
	c := v & -v
	r := v + c
	return r | (((v ^ r) / c) >> 2)
}
