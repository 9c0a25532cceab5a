package matcher

import (
	"github.com/coregx/substring/swar"
)

// FindAll returns the start positions of occurrences of the pattern in
// text, in ascending order, including overlapping occurrences. If n > 0
// it returns at most n positions; n < 0 means all. Returns nil when
// there are none.
//
// Overlap semantics: after a match at p the scan resumes at p+period,
// the nearest position where another occurrence can begin. "aa" in
// "aaaa" yields [0 1 2].
//
// Example:
//
//	positions := m.FindAll([]byte("abababab"), -1)
//	// pattern "abab" → [0 2 4]
func (m *Matcher) FindAll(text []byte, n int) []int {
	if n == 0 {
		return nil
	}

	first := m.FindAt(text, 0)
	if first < 0 {
		return nil
	}

	// Estimate ~1 match per 100 bytes, capped so large inputs with few
	// matches do not pay for a huge result slice up front.
	initCap := len(text)/100 + 1
	if initCap > 256 {
		initCap = 256
	}
	out := make([]int, 0, initCap)
	out = append(out, first)

	period := m.index.Period()
	pos := first + period
	for n < 0 || len(out) < n {
		idx := m.FindAt(text, pos)
		if idx < 0 {
			break
		}
		out = append(out, idx)
		pos = idx + period
	}
	return out
}

// Count returns the number of occurrences of the pattern in text,
// including overlapping occurrences, without allocating a result slice.
// If n > 0 it counts at most n; n < 0 means all.
//
// Example:
//
//	m.Count([]byte("aaaa"), -1) // pattern "aa" → 3
func (m *Matcher) Count(text []byte, n int) int {
	if n == 0 {
		return 0
	}

	// Single-byte patterns count occurrences in one SWAR pass.
	if m.strategy == UseMemchr && n < 0 {
		count := swar.Count(text, m.pattern[0])
		if m.trackStats {
			m.stats.addScan(UseMemchr)
			c := scanCounters{matches: uint64(count)}
			m.stats.flush(&c)
		}
		return count
	}

	count := 0
	period := m.index.Period()
	pos := 0
	for {
		idx := m.FindAt(text, pos)
		if idx < 0 {
			break
		}
		count++
		if n > 0 && count >= n {
			break
		}
		pos = idx + period
	}
	return count
}
