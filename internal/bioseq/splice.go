package bioseq

import "fmt"

// Splice assembles a product sequence from ordered location segments.
// Literal segments are appended verbatim (normalized under the source's
// variant); range segments are extracted with Subsequence and, on the
// reverse strand, reverse-complemented in place. Amino-acid sources
// cannot be strand-flipped, so for them the flip step is an explicit
// no-op and the segment is used as extracted. The product carries the
// source's variant; for nucleic sources the assembled buffer's t/u
// symbols are folded to match the product's own RNA/DNA reading.
func Splice(src *Sequence, locs Locations) (*Sequence, error) {
	parts := make([]byte, 0, src.Len())
	for _, loc := range locs {
		if loc.Literal != "" {
			parts = append(parts, normalize(loc.Literal, src.variant)...)
			continue
		}

		sub, ok := src.Subsequence(loc.Start, loc.End)
		if !ok {
			return nil, fmt.Errorf("bioseq: splice range %d..%d out of domain", loc.Start, loc.End)
		}
		if loc.Strand < 0 && src.variant == NucleicAcid {
			sub.ReverseComplementInPlace()
		}
		parts = append(parts, sub.buf...)
	}

	out := &Sequence{buf: parts, variant: src.variant}
	if out.variant == NucleicAcid && out.IsRNA() {
		out.ToRNAInPlace()
	}
	return out, nil
}

// Splice assembles a spliced product from this sequence; see the
// package-level Splice.
func (s *Sequence) Splice(locs Locations) (*Sequence, error) {
	return Splice(s, locs)
}

// SpliceExpr parses a location expression and splices with it.
func (s *Sequence) SpliceExpr(expr string) (*Sequence, error) {
	locs, err := ParseLocations(expr)
	if err != nil {
		return nil, err
	}
	return Splice(s, locs)
}
