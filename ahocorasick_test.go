// Differential tests against the coregx/ahocorasick automaton.
//
// An Aho-Corasick automaton built over a single pattern is an independent
// leftmost-first searcher, so it makes a good oracle: every first-occurrence
// query must agree, and overlapping enumeration must agree when the oracle
// is resumed one byte past each match start.
package substring

import (
	"reflect"
	"strings"
	"testing"

	"github.com/coregx/ahocorasick"
)

func buildAutomaton(tb testing.TB, pattern []byte) *ahocorasick.Automaton {
	tb.Helper()
	builder := ahocorasick.NewBuilder()
	builder.AddPattern(pattern)
	auto, err := builder.Build()
	if err != nil {
		tb.Fatalf("ahocorasick build failed for %q: %v", pattern, err)
	}
	return auto
}

// automatonAll enumerates overlapping occurrences with the automaton.
func automatonAll(auto *ahocorasick.Automaton, text []byte) []int {
	var out []int
	at := 0
	for at < len(text) {
		m := auto.Find(text, at)
		if m == nil {
			break
		}
		out = append(out, m.Start)
		at = m.Start + 1
	}
	return out
}

var oracleCases = []struct {
	pattern string
	text    string
}{
	{"needle", "a haystack with a needle in it and a needle at the end needle"},
	{"aa", "aaaaaaaaaa"},
	{"abab", "abababababab"},
	{"aabaa", "aabaabaaabaabaa"},
	{"the", "the cat and the dog and the bird"},
	{"quiz", "pop quiz: quiz me on quizzes"},
	{"s", "mississippi"},
	{"xyz", "no occurrences here"},
	{"mississippi", "mississippi"},
	{"\x00\xff", "a\x00\xffb\x00\xff"},
	{strings.Repeat("ab", 20), strings.Repeat("ab", 60)},
}

func TestFindIndexAgainstAutomaton(t *testing.T) {
	for _, tc := range oracleCases {
		pattern, text := []byte(tc.pattern), []byte(tc.text)
		p := MustCompile(pattern)
		auto := buildAutomaton(t, pattern)

		want := -1
		if m := auto.Find(text, 0); m != nil {
			want = m.Start
		}
		if got := p.FindIndex(text); got != want {
			t.Errorf("FindIndex(%q in %q) = %d, automaton = %d", tc.pattern, tc.text, got, want)
		}
		if got, want := p.Match(text), auto.IsMatch(text); got != want {
			t.Errorf("Match(%q in %q) = %v, automaton = %v", tc.pattern, tc.text, got, want)
		}
	}
}

func TestFindIndexAtAgainstAutomaton(t *testing.T) {
	for _, tc := range oracleCases {
		pattern, text := []byte(tc.pattern), []byte(tc.text)
		p := MustCompile(pattern)
		auto := buildAutomaton(t, pattern)

		for start := 0; start <= len(text); start++ {
			want := -1
			if start < len(text) {
				if m := auto.Find(text, start); m != nil {
					want = m.Start
				}
			}
			if got := p.FindIndexAt(text, start); got != want {
				t.Errorf("FindIndexAt(%q in %q, %d) = %d, automaton = %d",
					tc.pattern, tc.text, start, got, want)
			}
		}
	}
}

func TestFindAllIndexAgainstAutomaton(t *testing.T) {
	for _, tc := range oracleCases {
		pattern, text := []byte(tc.pattern), []byte(tc.text)
		p := MustCompile(pattern)
		auto := buildAutomaton(t, pattern)

		want := automatonAll(auto, text)
		got := p.FindAllIndex(text, -1)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("FindAllIndex(%q in %q) = %v, automaton = %v", tc.pattern, tc.text, got, want)
		}
		if count := p.Count(text, -1); count != len(want) {
			t.Errorf("Count(%q in %q) = %d, automaton = %d", tc.pattern, tc.text, count, len(want))
		}
	}
}
