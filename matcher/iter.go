package matcher

// Iter is a lazy cursor over the occurrences of a pattern in one text.
//
// Each Iter is independent: it holds its own position and shares only
// the immutable Matcher, so concurrent iterators over the same or
// different texts never interfere. An Iter is not itself safe for
// concurrent use.
//
// Example:
//
//	it := m.Iter(text)
//	for pos, ok := it.Next(); ok; pos, ok = it.Next() {
//		use(pos)
//	}
type Iter struct {
	m    *Matcher
	text []byte
	next int
	done bool
}

// Iter returns an iterator over all occurrences in text, including
// overlapping occurrences, in ascending order.
func (m *Matcher) Iter(text []byte) *Iter {
	return m.IterAt(text, 0)
}

// IterAt returns an iterator over the occurrences at or after start.
// A negative start is treated as 0.
func (m *Matcher) IterAt(text []byte, start int) *Iter {
	if start < 0 {
		start = 0
	}
	return &Iter{m: m, text: text, next: start}
}

// Next returns the position of the next occurrence. ok is false once
// the text is exhausted; further calls keep returning (-1, false)
// without rescanning.
func (it *Iter) Next() (pos int, ok bool) {
	if it.done {
		return -1, false
	}
	idx := it.m.FindAt(it.text, it.next)
	if idx < 0 {
		it.done = true
		return -1, false
	}
	it.next = idx + it.m.index.Period()
	return idx, true
}

// Reset rewinds the iterator to start, making it reusable over the same
// text. A negative start is treated as 0.
func (it *Iter) Reset(start int) {
	if start < 0 {
		start = 0
	}
	it.next = start
	it.done = false
}
