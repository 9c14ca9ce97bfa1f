package bioseq

// EachWindow slides a fixed-size window over the sequence and calls visit
// with each one. Windows start at offset 0 and advance by step while a
// full window still fits; the returned remainder is the unconsumed tail
// beginning just after the last emitted window. When size is larger than
// the sequence no window is emitted and the remainder is the whole
// buffer. Each call is independent; there is no cross-call state.
func (s *Sequence) EachWindow(size, step int, visit func(*Sequence)) *Sequence {
	if step < 1 {
		step = 1
	}
	if size < 1 || size > len(s.buf) {
		return s.Clone()
	}

	last := -1
	for i := 0; i+size <= len(s.buf); i += step {
		visit(s.slice(i, i+size))
		last = i
	}
	return s.slice(last+size, len(s.buf))
}

// Windows collects every window emitted by EachWindow along with the
// remainder, for callers that don't need the lazy form.
func (s *Sequence) Windows(size, step int) (windows []*Sequence, remainder *Sequence) {
	remainder = s.EachWindow(size, step, func(w *Sequence) {
		windows = append(windows, w)
	})
	return windows, remainder
}
