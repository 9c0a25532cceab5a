package matcher

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Stats tracks scan statistics for performance analysis.
//
// Counters are updated with sync/atomic and read through StatsSnapshot,
// so a Matcher shared by concurrent scans keeps coherent totals. Scan
// loops accumulate locally and flush once per search call, keeping the
// atomic traffic off the per-window hot path.
//
// The per-window group sits on its own cache line: flushes of the hot
// counters from one goroutine do not invalidate the line holding the
// per-call counters read by another.
//
// IMPORTANT: Stats MUST be the first field of Matcher for proper 8-byte
// alignment on 32-bit platforms. This ensures atomic operations on uint64
// fields work correctly.
type Stats struct {
	// Per-window group: accumulated across every inspected window.
	// Windows counts window inspections (including table quick-skips),
	// Comparisons counts byte comparisons, ShiftTotal sums the advances
	// taken, DepthTotal sums the matched depth per walked window.
	Windows     uint64
	Comparisons uint64
	ShiftTotal  uint64
	DepthTotal  uint64

	_ cpu.CacheLinePad

	// Per-call group: bumped once per search call.
	Scans              uint64
	Matches            uint64
	Candidates         uint64
	MemchrSearches     uint64
	RareByteSearches   uint64
	ShiftTableSearches uint64
	TrieSearches       uint64
}

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	// Scans counts search calls (FindAt, iterator steps, FindAll passes).
	Scans uint64

	// Matches counts occurrences reported.
	Matches uint64

	// Candidates counts anchor positions verified by the rare-byte
	// strategy. Candidates-Matches is the false-positive count of the
	// anchor pair.
	Candidates uint64

	// Windows counts candidate windows inspected by the shifting
	// strategies, including windows dismissed by the shift-table quick
	// skip. Memchr and rare-byte scans do not contribute here.
	Windows uint64

	// Comparisons counts index probes by the shifting strategies: one
	// per matched byte plus the probe that detects each mismatch. SWAR
	// scans and anchored verification are not byte-accounted.
	Comparisons uint64

	// ShiftTotal sums window advances. ShiftTotal/Windows is the
	// observed average shift.
	ShiftTotal uint64

	// DepthTotal sums matched window depths. DepthTotal/Windows is the
	// observed average walk depth.
	DepthTotal uint64

	// Per-strategy search counts.
	MemchrSearches     uint64
	RareByteSearches   uint64
	ShiftTableSearches uint64
	TrieSearches       uint64
}

// ShiftStats summarizes how effectively the index skips text.
//
// AvgShift is the mean window advance; values near the pattern length
// mean the scan touches roughly one byte in PatternLen. AvgDepth is the
// mean matched depth per window; values near zero mean mismatches are
// detected on the first byte inspected.
type ShiftStats struct {
	AvgShift float64
	AvgDepth float64
	Windows  uint64
}

// scanCounters accumulates hot-path statistics on the stack during one
// search call. A zero value is ready to use.
type scanCounters struct {
	windows     uint64
	comparisons uint64
	shiftTotal  uint64
	depthTotal  uint64
	matches     uint64
	candidates  uint64
}

// window records one inspected window: cmp bytes compared, depth bytes
// matched, advanced by shift.
func (c *scanCounters) window(cmp, depth, shift int) {
	c.windows++
	c.comparisons += uint64(cmp)
	c.depthTotal += uint64(depth)
	c.shiftTotal += uint64(shift)
}

// flush publishes accumulated counters. Called once per search call;
// no-op for an all-zero accumulator with zero matches.
func (s *Stats) flush(c *scanCounters) {
	if c.windows != 0 {
		atomic.AddUint64(&s.Windows, c.windows)
		atomic.AddUint64(&s.Comparisons, c.comparisons)
		atomic.AddUint64(&s.ShiftTotal, c.shiftTotal)
		atomic.AddUint64(&s.DepthTotal, c.depthTotal)
	}
	if c.matches != 0 {
		atomic.AddUint64(&s.Matches, c.matches)
	}
	if c.candidates != 0 {
		atomic.AddUint64(&s.Candidates, c.candidates)
	}
}

// addScan bumps the per-call counters for one search under strategy.
func (s *Stats) addScan(strategy Strategy) {
	atomic.AddUint64(&s.Scans, 1)
	switch strategy {
	case UseMemchr:
		atomic.AddUint64(&s.MemchrSearches, 1)
	case UseRareByte:
		atomic.AddUint64(&s.RareByteSearches, 1)
	case UseShiftTable:
		atomic.AddUint64(&s.ShiftTableSearches, 1)
	case UseTrie:
		atomic.AddUint64(&s.TrieSearches, 1)
	}
}

// Stats returns a snapshot of the scan statistics.
//
// Example:
//
//	stats := m.Stats()
//	println("windows inspected:", stats.Windows)
func (m *Matcher) Stats() StatsSnapshot {
	s := &m.stats
	return StatsSnapshot{
		Scans:              atomic.LoadUint64(&s.Scans),
		Matches:            atomic.LoadUint64(&s.Matches),
		Candidates:         atomic.LoadUint64(&s.Candidates),
		Windows:            atomic.LoadUint64(&s.Windows),
		Comparisons:        atomic.LoadUint64(&s.Comparisons),
		ShiftTotal:         atomic.LoadUint64(&s.ShiftTotal),
		DepthTotal:         atomic.LoadUint64(&s.DepthTotal),
		MemchrSearches:     atomic.LoadUint64(&s.MemchrSearches),
		RareByteSearches:   atomic.LoadUint64(&s.RareByteSearches),
		ShiftTableSearches: atomic.LoadUint64(&s.ShiftTableSearches),
		TrieSearches:       atomic.LoadUint64(&s.TrieSearches),
	}
}

// ShiftStats returns the observed average shift and walk depth across all
// windows inspected so far. Zero windows yield zero averages.
//
// These are measurements of this matcher's traffic, not properties of the
// pattern: a text that keeps hitting long pattern prefixes drags AvgShift
// down even though the index is unchanged.
//
// Example:
//
//	m.FindAll(text, -1)
//	ss := m.ShiftStats()
//	fmt.Printf("avg shift %.1f over %d windows\n", ss.AvgShift, ss.Windows)
func (m *Matcher) ShiftStats() ShiftStats {
	windows := atomic.LoadUint64(&m.stats.Windows)
	if windows == 0 {
		return ShiftStats{}
	}
	return ShiftStats{
		AvgShift: float64(atomic.LoadUint64(&m.stats.ShiftTotal)) / float64(windows),
		AvgDepth: float64(atomic.LoadUint64(&m.stats.DepthTotal)) / float64(windows),
		Windows:  windows,
	}
}

// ResetStats resets scan statistics to zero.
func (m *Matcher) ResetStats() {
	s := &m.stats
	atomic.StoreUint64(&s.Windows, 0)
	atomic.StoreUint64(&s.Comparisons, 0)
	atomic.StoreUint64(&s.ShiftTotal, 0)
	atomic.StoreUint64(&s.DepthTotal, 0)
	atomic.StoreUint64(&s.Scans, 0)
	atomic.StoreUint64(&s.Matches, 0)
	atomic.StoreUint64(&s.Candidates, 0)
	atomic.StoreUint64(&s.MemchrSearches, 0)
	atomic.StoreUint64(&s.RareByteSearches, 0)
	atomic.StoreUint64(&s.ShiftTableSearches, 0)
	atomic.StoreUint64(&s.TrieSearches, 0)
}
