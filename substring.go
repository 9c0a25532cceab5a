// Package substring provides a fast single-pattern substring searcher.
//
// substring compiles a byte pattern once into an immutable index, then scans
// texts with skip-ahead loops instead of byte-at-a-time comparison:
//   - Reversed-suffix index with prefix-boundary metadata
//   - Right-to-left window scans that skip up to a full pattern length
//   - SWAR-accelerated primitives (memchr, rare-byte pair scan)
//   - Automatic strategy selection per pattern
//
// Unlike bytes.Index loops, a compiled Pattern enumerates overlapping
// occurrences: "aa" occurs in "aaaa" at 0, 1 and 2.
//
// Basic usage:
//
//	// Compile a pattern
//	p, err := substring.CompileString("needle")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Find first occurrence
//	pos := p.FindIndex([]byte("a haystack with a needle in it"))
//	fmt.Println(pos) // 18
//
//	// Check containment
//	if p.Match([]byte("needle in haystack")) {
//	    fmt.Println("found!")
//	}
//
// Advanced usage:
//
//	// Custom configuration
//	config := substring.DefaultConfig()
//	config.EnableRareByte = false // force the shift-table loop
//	p, err := substring.CompileWithConfig([]byte("needle"), config)
//
// Performance characteristics:
//   - Single-byte patterns: SWAR memchr, several bytes per step
//   - Short patterns with a rare byte: anchored SWAR pair scan
//   - Other short patterns: shift-table loop, sublinear on misses
//   - Long patterns: index walk, shifts derived from matched suffixes
//   - Worst case: O(len(text) * len(pattern)), typically far below linear
//
// Limitations:
//   - One pattern per compiled searcher (no pattern sets)
//   - Exact bytes only: no case folding, no Unicode normalization
//   - The text must be in memory (no streaming scan)
package substring

import (
	"strconv"

	"github.com/coregx/substring/matcher"
	"github.com/coregx/substring/suffix"
)

// ErrEmptyPattern is returned by Compile for a zero-length pattern.
// An empty pattern has no bytes to index and no meaningful occurrence set.
var ErrEmptyPattern = suffix.ErrEmptyPattern

// Config controls strategy selection and diagnostics for a compiled Pattern.
// The zero value disables every fast path; start from DefaultConfig instead.
type Config = matcher.Config

// DefaultConfig returns the configuration Compile uses: all fast paths
// enabled, statistics tracking on.
//
// Example:
//
//	config := substring.DefaultConfig()
//	config.TrackStats = false // shave the per-scan atomic updates
//	p, _ := substring.CompileWithConfig([]byte("needle"), config)
func DefaultConfig() Config {
	return matcher.DefaultConfig()
}

// Pattern is a compiled substring searcher.
//
// A Pattern is immutable after compilation and safe for concurrent use,
// except for ResetStats which clears shared counters.
//
// Example:
//
//	p := substring.MustCompile([]byte("needle"))
//	if p.Match([]byte("needle in haystack")) {
//	    println("found!")
//	}
type Pattern struct {
	m       *matcher.Matcher
	pattern string
}

// Compile builds the index for pattern and selects a scan strategy.
//
// The pattern bytes are copied; the caller may reuse the slice. The only
// invalid patterns are the empty one (ErrEmptyPattern) and one longer than
// suffix.MaxPatternLen.
//
// Example:
//
//	p, err := substring.Compile([]byte("needle"))
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern []byte) (*Pattern, error) {
	return CompileWithConfig(pattern, matcher.DefaultConfig())
}

// CompileString is Compile for a string pattern.
//
// Example:
//
//	p, err := substring.CompileString("needle")
func CompileString(pattern string) (*Pattern, error) {
	return Compile([]byte(pattern))
}

// MustCompile is Compile but panics on error.
//
// This is useful for patterns known to be valid at program start.
//
// Example:
//
//	var needle = substring.MustCompile([]byte("needle"))
func MustCompile(pattern []byte) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("substring: Compile(" + strconv.Quote(string(pattern)) + "): " + err.Error())
	}
	return p
}

// MustCompileString is CompileString but panics on error.
//
// Example:
//
//	var needle = substring.MustCompileString("needle")
func MustCompileString(pattern string) *Pattern {
	p, err := CompileString(pattern)
	if err != nil {
		panic("substring: Compile(" + strconv.Quote(pattern) + "): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := substring.DefaultConfig()
//	config.ShortPatternCutoff = 64 // keep longer patterns on the fast paths
//	p, err := substring.CompileWithConfig([]byte("needle"), config)
func CompileWithConfig(pattern []byte, config Config) (*Pattern, error) {
	ix, err := suffix.Build(pattern)
	if err != nil {
		return nil, err
	}
	m, err := matcher.New(ix, config)
	if err != nil {
		return nil, err
	}
	return &Pattern{
		m:       m,
		pattern: string(pattern),
	}, nil
}

// FindIndex returns the position of the leftmost occurrence of the pattern
// in text, or -1 if the pattern does not occur. It is the overlapping-search
// equivalent of bytes.Index.
//
// Example:
//
//	p := substring.MustCompileString("the")
//	pos := p.FindIndex([]byte("the cat and the dog"))
//	println(pos) // 0
func (p *Pattern) FindIndex(text []byte) int {
	return p.m.FindAt(text, 0)
}

// FindIndexAt returns the position of the leftmost occurrence of the pattern
// at or after start, or -1 if there is none. A negative start is treated
// as zero.
//
// Example:
//
//	p := substring.MustCompileString("the")
//	pos := p.FindIndexAt([]byte("the cat and the dog"), 1)
//	println(pos) // 12
func (p *Pattern) FindIndexAt(text []byte, start int) int {
	return p.m.FindAt(text, start)
}

// FindAllIndex returns the positions of successive occurrences of the
// pattern in text, including overlapping ones. If n > 0 it returns at most
// n positions; if n < 0 it returns all of them. It returns nil when there
// are none or n == 0.
//
// Example:
//
//	p := substring.MustCompileString("aba")
//	positions := p.FindAllIndex([]byte("ababa"), -1)
//	// positions = [0, 2]
func (p *Pattern) FindAllIndex(text []byte, n int) []int {
	return p.m.FindAll(text, n)
}

// Iter returns an iterator over the occurrences of the pattern in text,
// cheapest when positions are consumed one at a time.
//
// Example:
//
//	p := substring.MustCompileString("aa")
//	it := p.Iter([]byte("aaaa"))
//	for pos, ok := it.Next(); ok; pos, ok = it.Next() {
//	    println(pos) // 0, 1, 2
//	}
func (p *Pattern) Iter(text []byte) *matcher.Iter {
	return p.m.Iter(text)
}

// Match reports whether text contains the pattern.
//
// Example:
//
//	p := substring.MustCompileString("sip")
//	p.Match([]byte("mississippi")) // true
func (p *Pattern) Match(text []byte) bool {
	return p.m.Match(text)
}

// MatchString reports whether s contains the pattern.
//
// Example:
//
//	p := substring.MustCompileString("sip")
//	p.MatchString("mississippi") // true
func (p *Pattern) MatchString(s string) bool {
	return p.m.Match([]byte(s))
}

// Count returns the number of occurrences of the pattern in text, including
// overlapping ones. If n >= 0 counting stops at n; if n < 0 all occurrences
// are counted.
//
// Example:
//
//	p := substring.MustCompileString("ss")
//	p.Count([]byte("mississippi"), -1) // 2
func (p *Pattern) Count(text []byte, n int) int {
	return p.m.Count(text, n)
}

// String returns the pattern text.
func (p *Pattern) String() string {
	return p.pattern
}

// Len returns the pattern length in bytes.
func (p *Pattern) Len() int {
	return len(p.pattern)
}

// Strategy returns the scan strategy selected at compile time.
//
// Example:
//
//	p := substring.MustCompileString("x")
//	println(p.Strategy().String()) // "UseMemchr"
func (p *Pattern) Strategy() matcher.Strategy {
	return p.m.Strategy()
}

// Stats returns a snapshot of the scan counters accumulated so far.
// All fields are zero unless the Pattern was compiled with TrackStats.
//
// Example:
//
//	p := substring.MustCompileString("needle")
//	p.Match(haystack)
//	fmt.Printf("%d windows, %d comparisons\n", p.Stats().Windows, p.Stats().Comparisons)
func (p *Pattern) Stats() matcher.StatsSnapshot {
	return p.m.Stats()
}

// ShiftStats summarizes window efficiency: average shift and average matched
// depth per inspected window.
func (p *Pattern) ShiftStats() matcher.ShiftStats {
	return p.m.ShiftStats()
}

// ResetStats zeroes the scan counters.
//
// Scans running concurrently with a reset may leave a partial trace behind;
// counters are reliable again once the reset returns and those scans finish.
func (p *Pattern) ResetStats() {
	p.m.ResetStats()
}
