package matcher

import (
	"bytes"
	"errors"

	"github.com/coregx/substring/suffix"
	"github.com/coregx/substring/swar"
)

// ErrNilIndex is returned by New when the index is nil.
var ErrNilIndex = errors.New("substring: nil index")

// advanceHook, when non-nil, observes every window advance taken by the
// shifting scan loops as (from, to) positions. Tests install it to check
// that no advance can jump over a real occurrence. It must only be set
// before any scan runs; scans never write it.
var advanceHook func(from, to int)

// Matcher finds occurrences of one pattern in arbitrary texts.
//
// A Matcher is built once per pattern from an immutable suffix.Index and
// is safe for concurrent use: scans share the index read-only and all
// statistics are atomic.
//
// Example:
//
//	ix, _ := suffix.Build([]byte("needle"))
//	m, _ := matcher.New(ix, matcher.DefaultConfig())
//	pos := m.FindAt(haystack, 0)
type Matcher struct {
	// stats MUST be the first field for 8-byte alignment of its uint64
	// counters on 32-bit platforms.
	stats Stats

	index   *suffix.Index
	pattern []byte
	config  Config

	strategy Strategy

	// Rare-byte anchors, precomputed when strategy == UseRareByte.
	// anchor1 sits anchorOff bytes into the pattern; anchor2 follows it
	// at distance anchorGap.
	anchor1   byte
	anchor2   byte
	anchorOff int
	anchorGap int

	trackStats bool
}

// New creates a Matcher for the indexed pattern.
//
// The strategy is selected once from the pattern shape and config; see
// SelectStrategy. Returns ErrNilIndex for a nil index and a *ConfigError
// for an invalid config.
//
// Example:
//
//	ix, err := suffix.Build([]byte("needle"))
//	if err != nil {
//		return err
//	}
//	m, err := matcher.New(ix, matcher.DefaultConfig())
func New(ix *suffix.Index, config Config) (*Matcher, error) {
	if ix == nil {
		return nil, ErrNilIndex
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	m := &Matcher{
		index:      ix,
		pattern:    ix.Pattern(),
		config:     config,
		strategy:   SelectStrategy(ix, config),
		trackStats: config.TrackStats,
	}

	if m.strategy == UseRareByte {
		pair := swar.SelectRarePair(m.pattern)
		b1, i1, b2, i2 := pair.Byte1, pair.Index1, pair.Byte2, pair.Index2
		// MemchrPair wants the anchors in text order.
		if i2 < i1 {
			b1, i1, b2, i2 = b2, i2, b1, i1
		}
		m.anchor1, m.anchor2 = b1, b2
		m.anchorOff = i1
		m.anchorGap = i2 - i1
	}

	return m, nil
}

// Strategy returns the scan strategy selected at construction.
func (m *Matcher) Strategy() Strategy {
	return m.strategy
}

// Config returns the configuration the Matcher was built with.
func (m *Matcher) Config() Config {
	return m.config
}

// Index returns the underlying pattern index.
func (m *Matcher) Index() *suffix.Index {
	return m.index
}

// Pattern returns the pattern bytes.
// The slice is shared and must not be modified.
func (m *Matcher) Pattern() []byte {
	return m.pattern
}

// FindAt returns the position of the leftmost occurrence of the pattern
// at or after start, or -1 if there is none. A negative start is treated
// as 0; a start beyond the last possible window returns -1.
//
// Example:
//
//	pos := m.FindAt(text, 0)
//	for pos >= 0 {
//		use(pos)
//		pos = m.FindAt(text, pos+1)
//	}
func (m *Matcher) FindAt(text []byte, start int) int {
	if m.trackStats {
		m.stats.addScan(m.strategy)
	}
	if start < 0 {
		start = 0
	}
	if start > len(text)-len(m.pattern) {
		return -1
	}

	switch m.strategy {
	case UseMemchr:
		return m.findMemchr(text, start)
	case UseRareByte:
		return m.findRareByte(text, start)
	case UseShiftTable:
		return m.findShiftTable(text, start)
	default:
		return m.findTrie(text, start)
	}
}

// Match reports whether the pattern occurs in text.
func (m *Matcher) Match(text []byte) bool {
	return m.FindAt(text, 0) >= 0
}

// findMemchr handles single-byte patterns: every occurrence of the byte
// is a match, so the SWAR scan is the whole search.
func (m *Matcher) findMemchr(text []byte, start int) int {
	idx := swar.MemchrAt(text, m.pattern[0], start)
	if idx >= 0 && m.trackStats {
		c := scanCounters{matches: 1}
		m.stats.flush(&c)
	}
	return idx
}

// findRareByte scans for the pattern's two rarest bytes at their fixed
// distance and verifies each candidate window in full. Candidates arrive
// in ascending order, so the first verified one is the leftmost match.
func (m *Matcher) findRareByte(text []byte, start int) (pos int) {
	var c scanCounters
	if m.trackStats {
		defer func() { m.stats.flush(&c) }()
	}

	plen := len(m.pattern)
	last := len(text) - plen
	// The first anchor of a window starting at p sits at p+anchorOff.
	from := start + m.anchorOff
	for {
		rel := swar.MemchrPair(text[from:], m.anchor1, m.anchor2, m.anchorGap)
		if rel < 0 {
			return -1
		}
		cand := from + rel
		p := cand - m.anchorOff
		if p > last {
			// Later candidates start even further right.
			return -1
		}
		c.candidates++
		if bytes.Equal(text[p:p+plen], m.pattern) {
			c.matches++
			return p
		}
		from = cand + 1
	}
}

// findShiftTable runs a Horspool-style loop. Windows whose last byte
// differs from the pattern's are dismissed with one depth-1 table lookup
// and never walked; the rest are verified by the index walk, advancing
// by the larger of the two safe shifts.
func (m *Matcher) findShiftTable(text []byte, start int) (pos int) {
	var c scanCounters
	if m.trackStats {
		defer func() { m.stats.flush(&c) }()
	}

	ix := m.index
	plen := len(m.pattern)
	lastByte := m.pattern[plen-1]
	last := len(text) - plen

	p := start
	for p <= last {
		b := text[p+plen-1]
		if b != lastByte {
			shift := ix.Shift(b)
			c.window(1, 0, shift)
			if advanceHook != nil {
				advanceHook(p, p+shift)
			}
			p += shift
			continue
		}

		match, shift, depth := ix.WalkWindow(text, p)
		if ts := ix.Shift(b); ts > shift {
			shift = ts
		}
		cmp := depth
		if !match {
			cmp++ // the diverging byte was read too
		}
		c.window(cmp, depth, shift)
		if advanceHook != nil {
			advanceHook(p, p+shift)
		}
		if match {
			c.matches++
			return p
		}
		p += shift
	}
	return -1
}

// findTrie walks every candidate window through the index right to left.
// No auxiliary structure: the walk itself yields the shift.
func (m *Matcher) findTrie(text []byte, start int) (pos int) {
	var c scanCounters
	if m.trackStats {
		defer func() { m.stats.flush(&c) }()
	}

	ix := m.index
	plen := len(m.pattern)
	last := len(text) - plen

	p := start
	for p <= last {
		match, shift, depth := ix.WalkWindow(text, p)
		cmp := depth
		if !match {
			cmp++
		}
		c.window(cmp, depth, shift)
		if advanceHook != nil {
			advanceHook(p, p+shift)
		}
		if match {
			c.matches++
			return p
		}
		p += shift
	}
	return -1
}
