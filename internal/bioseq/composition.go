package bioseq

// Composition counts each distinct symbol in the sequence. Symbols that
// do not occur are absent from the map.
func Composition(s *Sequence) map[byte]int {
	counts := make(map[byte]int)
	for _, b := range s.buf {
		counts[b]++
	}
	return counts
}

// WeightedSum adds up weights[symbol] over every symbol in the sequence.
// A symbol missing from the weight map contributes zero; missing keys are
// never an error.
func WeightedSum(s *Sequence, weights map[byte]float64) float64 {
	total := 0.0
	for _, b := range s.buf {
		total += weights[b]
	}
	return total
}
