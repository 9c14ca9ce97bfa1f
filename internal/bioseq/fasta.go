package bioseq

import "strings"

// Fasta renders the sequence as FASTA text: a ">" header line followed by
// the body. With wrap < 1 the body is a single newline-terminated line;
// otherwise it is split into wrap-width lines (the last may be shorter),
// each newline-terminated.
func (s *Sequence) Fasta(header string, wrap int) string {
	var b strings.Builder
	b.WriteByte('>')
	b.WriteString(header)
	b.WriteByte('\n')

	if wrap < 1 {
		b.Write(s.buf)
		b.WriteByte('\n')
		return b.String()
	}

	for i := 0; i < len(s.buf); i += wrap {
		end := i + wrap
		if end > len(s.buf) {
			end = len(s.buf)
		}
		b.Write(s.buf[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}
