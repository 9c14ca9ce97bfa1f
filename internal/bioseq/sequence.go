// Package bioseq models nucleic-acid and protein sequences as typed,
// normalized symbol buffers and implements the transformations on them:
// composition counting, complementation, reading-frame translation,
// location-based splicing, window scanning and composition-preserving
// randomization.
package bioseq

import "bytes"

// Variant marks a Sequence as nucleic acid or amino acid. It decides the
// normalization applied at construction and which operations the
// sequence supports.
type Variant int

const (
	// NucleicAcid sequences are kept lowercase
	NucleicAcid Variant = iota

	// AminoAcid sequences are kept uppercase
	AminoAcid
)

// Sequence is an owned, normalized buffer of sequence symbols plus a
// variant tag. Positions on the public surface are 1-based. Pure
// operations return a fresh Sequence that never aliases the source
// buffer; the *InPlace operations mutate the owned buffer directly.
type Sequence struct {
	buf     []byte
	variant Variant
}

// New creates a sequence of the passed variant from raw text. Whitespace,
// tabs and line breaks are stripped and the case is folded per the
// variant. Empty input is fine.
func New(raw string, variant Variant) *Sequence {
	return &Sequence{buf: normalize(raw, variant), variant: variant}
}

// NewNucleic creates a DNA/RNA sequence, normalized to lowercase.
func NewNucleic(raw string) *Sequence {
	return New(raw, NucleicAcid)
}

// NewAmino creates a protein sequence, normalized to uppercase.
func NewAmino(raw string) *Sequence {
	return New(raw, AminoAcid)
}

// normalize strips whitespace and folds case for the variant.
func normalize(raw string, variant Variant) []byte {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if variant == NucleicAcid {
			if 'A' <= b && b <= 'Z' {
				b += 'a' - 'A'
			}
		} else {
			if 'a' <= b && b <= 'z' {
				b -= 'a' - 'A'
			}
		}
		out = append(out, b)
	}
	return out
}

// Len is the number of symbols after normalization.
func (s *Sequence) Len() int {
	return len(s.buf)
}

// Variant returns the sequence's variant tag.
func (s *Sequence) Variant() Variant {
	return s.variant
}

func (s *Sequence) String() string {
	return string(s.buf)
}

// Bytes returns a copy of the normalized buffer.
func (s *Sequence) Bytes() []byte {
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

// Clone returns a deep copy of the sequence.
func (s *Sequence) Clone() *Sequence {
	return &Sequence{buf: s.Bytes(), variant: s.variant}
}

// Reset replaces the owned buffer with newly normalized raw text.
func (s *Sequence) Reset(raw string) {
	s.buf = normalize(raw, s.variant)
}

// Subsequence returns the symbols between the 1-based, inclusive
// positions start and end. A start or end below 1 yields no result
// (nil, false) rather than an error; end < start yields an empty
// sequence. An end past the last symbol is clamped.
func (s *Sequence) Subsequence(start, end int) (*Sequence, bool) {
	if start < 1 || end < 1 {
		return nil, false
	}
	if end > len(s.buf) {
		end = len(s.buf)
	}
	if end < start || start > len(s.buf) {
		return &Sequence{variant: s.variant}, true
	}
	return s.slice(start-1, end), true
}

// Concat appends another sequence's symbols, returning a fresh sequence
// of the receiver's variant. The other sequence's buffer is re-normalized
// under the receiver's variant so the result stays normalized.
func (s *Sequence) Concat(other *Sequence) *Sequence {
	joined := string(s.buf) + other.String()
	return New(joined, s.variant)
}

// slice copies the half-open 0-based range [from, to) into a derived
// sequence of the same variant.
func (s *Sequence) slice(from, to int) *Sequence {
	out := make([]byte, to-from)
	copy(out, s.buf[from:to])
	return &Sequence{buf: out, variant: s.variant}
}

// contains reports whether the buffer holds the symbol b.
func (s *Sequence) contains(b byte) bool {
	return bytes.IndexByte(s.buf, b) >= 0
}
