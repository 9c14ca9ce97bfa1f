package bioseq

import (
	"math/rand"
	"sort"
	"time"
)

// Randomizer builds composition-preserving shuffles of sequences. The
// random source is injected so behavior is reproducible under test; it
// is the only non-deterministic piece of the package.
type Randomizer struct {
	rng *rand.Rand
}

// NewRandomizer wraps the passed source; nil means a time-seeded one.
func NewRandomizer(rng *rand.Rand) *Randomizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Randomizer{rng: rng}
}

// Randomize draws a new sequence whose composition matches counts, or
// the sequence's own composition when counts is nil. When both a
// sequence and explicit counts are given, the target length is the
// sequence's length plus the sum of the counts; draws past the point
// where every count is spent stop early.
//
// Each position picks, among the symbols with remaining count, the one
// maximizing an independent uniform draw scaled by its remaining count.
// Ties go to the lower symbol byte: symbols are always visited in
// ascending byte order, a fixed, documented ordering. With each non-nil
// every drawn symbol is streamed to it instead of accumulated and the
// returned sequence is empty.
func (r *Randomizer) Randomize(s *Sequence, counts map[byte]int, each func(byte)) *Sequence {
	variant := NucleicAcid
	target := 0
	working := make(map[byte]int)

	if s != nil {
		variant = s.variant
		if counts != nil {
			// the additive form: sequence length joins the count sum
			target = s.Len()
		}
	}
	if counts == nil {
		if s != nil {
			working = Composition(s)
		}
	} else {
		for sym, n := range counts {
			if n > 0 {
				working[sym] = n
			}
		}
	}
	for _, n := range working {
		target += n
	}

	symbols := make([]byte, 0, len(working))
	for sym := range working {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	remaining := make([]int, len(symbols))
	for i, sym := range symbols {
		remaining[i] = working[sym]
	}

	out := make([]byte, 0, target)
	for pos := 0; pos < target; pos++ {
		best := -1
		bestDraw := -1.0
		for i := range symbols {
			if remaining[i] == 0 {
				continue
			}
			if draw := r.rng.Float64() * float64(remaining[i]); draw > bestDraw {
				bestDraw = draw
				best = i
			}
		}
		if best < 0 {
			break
		}
		remaining[best]--
		if each != nil {
			each(symbols[best])
			continue
		}
		out = append(out, symbols[best])
	}
	// re-normalize so count keys of the wrong case can't leak through
	return New(string(out), variant)
}

// RandomizeFromCounts is the empty-sequence form of Randomize: the
// result's length is exactly the sum of the counts.
func (r *Randomizer) RandomizeFromCounts(variant Variant, counts map[byte]int, each func(byte)) *Sequence {
	return r.Randomize(New("", variant), counts, each)
}
