package bioseq

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotNucleic is returned when a nucleic-acid operation is called
	// on an amino-acid sequence.
	ErrNotNucleic = errors.New("bioseq: not a nucleic-acid sequence")

	// ErrNoBases is returned by GC when the sequence has no a/t/u/g/c
	// bases to divide by.
	ErrNoBases = errors.New("bioseq: no unambiguous bases in sequence")
)

// legalBases is the full lowercase IUPAC nucleotide alphabet: the four
// bases, uracil and the ambiguity codes.
const legalBases = "atgcurymkdhvbswn"

// complement tables indexed by symbol. A zero entry means the symbol has
// no complement and passes through unchanged.
var (
	dnaComplement [256]byte
	rnaComplement [256]byte
)

func init() {
	set := func(t *[256]byte, a, b byte) { t[a] = b; t[b] = a }
	for _, t := range []*[256]byte{&dnaComplement, &rnaComplement} {
		set(t, 'g', 'c')
		set(t, 'r', 'y')
		set(t, 'm', 'k')
		set(t, 'd', 'h')
		set(t, 'v', 'b')
		t['s'] = 's'
		t['w'] = 'w'
		t['n'] = 'n'
	}
	set(&dnaComplement, 'a', 't')
	set(&rnaComplement, 'a', 'u')
}

// IsRNA reports whether the sequence reads as RNA. The presence of a
// single u is enough; a mixed t/u buffer still counts as RNA.
func (s *Sequence) IsRNA() bool {
	return s.contains('u')
}

// ComplementInPlace substitutes every symbol with its IUPAC complement,
// using the RNA table when the buffer reads as RNA. Symbol order is
// preserved and symbols outside the table are left unchanged.
func (s *Sequence) ComplementInPlace() error {
	if s.variant != NucleicAcid {
		return ErrNotNucleic
	}
	table := &dnaComplement
	if s.IsRNA() {
		table = &rnaComplement
	}
	for i, b := range s.buf {
		if c := table[b]; c != 0 {
			s.buf[i] = c
		}
	}
	return nil
}

// Complement is the pure counterpart of ComplementInPlace.
func (s *Sequence) Complement() (*Sequence, error) {
	out := s.Clone()
	if err := out.ComplementInPlace(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReverseComplementInPlace reverses the symbol order, then applies the
// forward complement.
func (s *Sequence) ReverseComplementInPlace() error {
	if s.variant != NucleicAcid {
		return ErrNotNucleic
	}
	for i, j := 0, len(s.buf)-1; i < j; i, j = i+1, j-1 {
		s.buf[i], s.buf[j] = s.buf[j], s.buf[i]
	}
	return s.ComplementInPlace()
}

// ReverseComplement is the pure counterpart of ReverseComplementInPlace.
func (s *Sequence) ReverseComplement() (*Sequence, error) {
	out := s.Clone()
	if err := out.ReverseComplementInPlace(); err != nil {
		return nil, err
	}
	return out, nil
}

// ToDNAInPlace rewrites u to t.
func (s *Sequence) ToDNAInPlace() error {
	if s.variant != NucleicAcid {
		return ErrNotNucleic
	}
	for i, b := range s.buf {
		if b == 'u' {
			s.buf[i] = 't'
		}
	}
	return nil
}

// ToDNA returns the DNA form of the sequence (u rewritten to t).
func (s *Sequence) ToDNA() (*Sequence, error) {
	out := s.Clone()
	if err := out.ToDNAInPlace(); err != nil {
		return nil, err
	}
	return out, nil
}

// ToRNAInPlace rewrites t to u.
func (s *Sequence) ToRNAInPlace() error {
	if s.variant != NucleicAcid {
		return ErrNotNucleic
	}
	for i, b := range s.buf {
		if b == 't' {
			s.buf[i] = 'u'
		}
	}
	return nil
}

// ToRNA returns the RNA form of the sequence (t rewritten to u).
func (s *Sequence) ToRNA() (*Sequence, error) {
	out := s.Clone()
	if err := out.ToRNAInPlace(); err != nil {
		return nil, err
	}
	return out, nil
}

// Translate maps the sequence's codons to an amino-acid sequence.
//
// Frames 1-3 translate forward from offsets 0-2. Frames 4-6 and -1..-3
// translate the reverse complement from offsets 0-2. Any other frame
// translates forward from offset 0. Translation happens on the DNA form
// (u folded to t), truncated so the translated span is the largest
// multiple of three from the offset. Stop codons come back as '*' from
// the tables themselves; unknown substitutes only for codons the table
// genuinely lacks, such as those holding ambiguity codes. A nil table
// means the standard genetic code and a zero unknown symbol means 'X'.
func (s *Sequence) Translate(frame int, table *CodonTable, unknown byte) (*Sequence, error) {
	if s.variant != NucleicAcid {
		return nil, ErrNotNucleic
	}
	if table == nil {
		table = StandardTable()
	}
	if unknown == 0 {
		unknown = 'X'
	}

	offset := 0
	flip := false
	switch {
	case 1 <= frame && frame <= 3:
		offset = frame - 1
	case 4 <= frame && frame <= 6:
		offset = frame - 4
		flip = true
	case -3 <= frame && frame <= -1:
		offset = -1 - frame
		flip = true
	}

	work := s.Clone()
	if flip {
		work.ReverseComplementInPlace()
	}
	work.ToDNAInPlace()

	span := len(work.buf) - offset
	if span < 0 {
		span = 0
	}
	span -= span % 3

	out := make([]byte, 0, span/3)
	for i := offset; i < offset+span; i += 3 {
		aa, ok := table.Translate(string(work.buf[i : i+3]))
		if !ok {
			aa = unknown
		}
		out = append(out, aa)
	}
	return New(string(out), AminoAcid), nil
}

// GC returns the GC content as a percentage of the a/t/u/g/c bases.
// A sequence without any of those bases has no defined GC content and
// returns ErrNoBases.
func (s *Sequence) GC() (float64, error) {
	if s.variant != NucleicAcid {
		return 0, ErrNotNucleic
	}
	gc, total := 0, 0
	for _, b := range s.buf {
		switch b {
		case 'g', 'c':
			gc++
			total++
		case 'a', 't', 'u':
			total++
		}
	}
	if total == 0 {
		return 0, ErrNoBases
	}
	return 100 * float64(gc) / float64(total), nil
}

// IllegalBases returns the sorted distinct symbols that fall outside the
// IUPAC nucleotide alphabet (bases, uracil and ambiguity codes).
func (s *Sequence) IllegalBases() []byte {
	seen := make(map[byte]bool)
	var out []byte
	for _, b := range s.buf {
		if strings.IndexByte(legalBases, b) >= 0 || seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
