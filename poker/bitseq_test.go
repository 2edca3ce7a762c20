package poker

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitSequenceFirstValues(t *testing.T) {
	t.Parallel()
	seq := NewBitSequence(0b11111)
	assert.Equal(t, uint32(47), seq.Next())
	assert.Equal(t, uint32(55), seq.Next())
	assert.Equal(t, uint32(59), seq.Next())
}

func TestBitSequenceSmallPattern(t *testing.T) {
	t.Parallel()
	seq := NewBitSequence(0b0011)
	assert.Equal(t, []uint32{0b0101, 0b0110, 0b1001, 0b1010, 0b1100}, seq.Take(5))
}

func TestBitSequenceOrderAndPopcount(t *testing.T) {
	t.Parallel()
	seq := NewBitSequence(0b11111)
	prev := uint32(0b11111)
	// Every five-of-thirteen pattern after the seed, ending with the royal pattern.
	values := seq.Take(1286)
	for _, v := range values {
		assert.Equal(t, 5, bits.OnesCount32(v), "value %b", v)
		assert.Greater(t, v, prev)
		assert.Less(t, v, uint32(1<<13))
		prev = v
	}
	assert.Equal(t, uint32(0b1111100000000), values[len(values)-1])

	// The sequence keeps going past 13 bits; callers stop it.
	assert.Greater(t, seq.Next(), uint32(1<<13))
}

func TestBitSequenceReset(t *testing.T) {
	t.Parallel()
	seq := NewBitSequence(0b111)
	first := seq.Take(10)
	seq.Reset()
	assert.Equal(t, first, seq.Take(10))
}
