package bioseq

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotAmino is returned when an amino-acid operation is called on a
// nucleic-acid sequence.
var ErrNotAmino = errors.New("bioseq: not an amino-acid sequence")

// Weight returns the average molecular weight of the sequence.
//
// Nucleic sequences sum the monophosphate masses, RNA or DNA chosen by
// IsRNA, minus one water per bond. Amino sequences sum the residue
// masses plus one water for the chain termini. Symbols without a mass,
// including nucleotide ambiguity codes, are an error.
func (s *Sequence) Weight() (float64, error) {
	if s.Len() == 0 {
		return 0, nil
	}

	var perSymbol map[byte]float64
	switch {
	case s.variant == AminoAcid:
		perSymbol = aminoWeights
	case s.IsRNA():
		perSymbol = rnaWeights
	default:
		perSymbol = dnaWeights
	}

	total := 0.0
	for _, b := range s.buf {
		w, ok := perSymbol[b]
		if !ok {
			return 0, fmt.Errorf("bioseq: no weight for symbol %q", b)
		}
		total += w
	}

	if s.variant == AminoAcid {
		return total + waterWeight, nil
	}
	return total - waterWeight*float64(s.Len()-1), nil
}

// Pattern expands the sequence into a regular expression that matches
// every concrete sequence it could stand for, with ambiguity codes
// turned into character classes. RNA sequences expand with u in place
// of t.
func (s *Sequence) Pattern() string {
	var perSymbol map[byte]string
	switch {
	case s.variant == AminoAcid:
		perSymbol = aminoPatterns
	case s.IsRNA():
		perSymbol = rnaPatterns
	default:
		perSymbol = dnaPatterns
	}

	var b strings.Builder
	for _, sym := range s.buf {
		if class, ok := perSymbol[sym]; ok {
			b.WriteString(class)
		} else {
			b.WriteByte(sym)
		}
	}
	return b.String()
}

// BaseNames maps each nucleotide symbol of the sequence to its long
// name. Symbols without a name are an error.
func (s *Sequence) BaseNames() ([]string, error) {
	if s.variant != NucleicAcid {
		return nil, ErrNotNucleic
	}
	out := make([]string, 0, s.Len())
	for _, b := range s.buf {
		name, ok := baseNames[b]
		if !ok {
			return nil, fmt.Errorf("bioseq: no name for base %q", b)
		}
		out = append(out, name)
	}
	return out, nil
}

// ResidueCodes maps each amino-acid symbol to its 3-letter residue code.
func (s *Sequence) ResidueCodes() ([]string, error) {
	if s.variant != AminoAcid {
		return nil, ErrNotAmino
	}
	out := make([]string, 0, s.Len())
	for _, b := range s.buf {
		code, ok := residueCodes[b]
		if !ok {
			return nil, fmt.Errorf("bioseq: no residue code for symbol %q", b)
		}
		out = append(out, code)
	}
	return out, nil
}

// ResidueNames maps each amino-acid symbol, via its 3-letter code, to
// its long residue name.
func (s *Sequence) ResidueNames() ([]string, error) {
	codes, err := s.ResidueCodes()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		name, ok := residueNames[code]
		if !ok {
			return nil, fmt.Errorf("bioseq: no residue name for code %q", code)
		}
		out = append(out, name)
	}
	return out, nil
}
