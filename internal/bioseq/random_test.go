package bioseq

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RandomizeFromCounts(t *testing.T) {
	counts := map[byte]int{'a': 10, 'c': 20, 'g': 30, 't': 40}

	r := NewRandomizer(rand.New(rand.NewSource(1)))
	got := r.RandomizeFromCounts(NucleicAcid, counts, nil)

	// frequency preserving regardless of draw order
	assert.Equal(t, 100, got.Len())
	assert.Equal(t, counts, Composition(got))
	assert.Equal(t, NucleicAcid, got.Variant())
}

func Test_Randomize_ownComposition(t *testing.T) {
	seq := NewNucleic("atgcatgcaaaa")

	r := NewRandomizer(rand.New(rand.NewSource(42)))
	got := r.Randomize(seq, nil, nil)

	assert.Equal(t, seq.Len(), got.Len())
	assert.Equal(t, Composition(seq), Composition(got))
}

// a fixed seed and the fixed symbol ordering make draws reproducible
func Test_Randomize_deterministic(t *testing.T) {
	counts := map[byte]int{'a': 5, 'c': 5, 'g': 5, 't': 5}

	first := NewRandomizer(rand.New(rand.NewSource(7))).RandomizeFromCounts(NucleicAcid, counts, nil)
	second := NewRandomizer(rand.New(rand.NewSource(7))).RandomizeFromCounts(NucleicAcid, counts, nil)

	assert.Equal(t, first.String(), second.String())
}

// when both a sequence and explicit counts are given the target length
// is the sequence length plus the count sum, and draws stop early once
// the counts are spent
func Test_Randomize_additiveLength(t *testing.T) {
	seq := NewNucleic("atgc")

	r := NewRandomizer(rand.New(rand.NewSource(3)))
	got := r.Randomize(seq, map[byte]int{'a': 2}, nil)

	assert.Equal(t, "aa", got.String())
}

func Test_Randomize_callback(t *testing.T) {
	counts := map[byte]int{'g': 3, 'c': 2}

	var drawn []byte
	r := NewRandomizer(rand.New(rand.NewSource(11)))
	got := r.RandomizeFromCounts(NucleicAcid, counts, func(sym byte) {
		drawn = append(drawn, sym)
	})

	// symbols stream to the callback instead of accumulating
	assert.Equal(t, 0, got.Len())
	assert.Len(t, drawn, 5)
	assert.Equal(t, counts, Composition(NewNucleic(string(drawn))))
}

func Test_Randomize_uppercaseCountKeys(t *testing.T) {
	r := NewRandomizer(rand.New(rand.NewSource(5)))
	got := r.RandomizeFromCounts(NucleicAcid, map[byte]int{'A': 3}, nil)

	// the result is normalized like any other sequence
	assert.Equal(t, "aaa", got.String())
}

func Test_Randomize_empty(t *testing.T) {
	r := NewRandomizer(nil)

	assert.Equal(t, 0, r.Randomize(NewNucleic(""), nil, nil).Len())
	assert.Equal(t, 0, r.RandomizeFromCounts(AminoAcid, nil, nil).Len())
}
