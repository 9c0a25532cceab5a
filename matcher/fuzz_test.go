package matcher

import (
	"reflect"
	"testing"

	"github.com/coregx/substring/suffix"
)

// fuzzConfigs is the strategy-bias set used by the differential fuzzers.
// Stats tracking stays on so the atomic paths run under the race fuzzer.
var fuzzConfigs = []Config{
	DefaultConfig(),
	{EnableMemchr: true, EnableRareByte: true, ShortPatternCutoff: 32, RareRankCutoff: 255, TrackStats: true},
	{EnableShiftTable: true, ShortPatternCutoff: 32, TrackStats: true},
	{TrackStats: true},
}

// naiveFindAt is the reference FindAt: leftmost occurrence at or after
// start, with the same clamping rules.
func naiveFindAt(pattern, text []byte, start int) int {
	if start < 0 {
		start = 0
	}
	occ := naiveAll(pattern, text)
	for _, o := range occ {
		if o >= start {
			return o
		}
	}
	return -1
}

func FuzzFindAt(f *testing.F) {
	f.Add([]byte("abab"), []byte("abababab"), 0)
	f.Add([]byte("aa"), []byte("aaaaaa"), 3)
	f.Add([]byte("the"), []byte("the cat sat on the mat"), 1)
	f.Add([]byte("xyz"), []byte("abcdef"), 0)
	f.Add([]byte{0x00, 0xff}, []byte{0xff, 0x00, 0xff, 0x00, 0xff}, -2)
	f.Add([]byte("q"), []byte(""), 100)

	f.Fuzz(func(t *testing.T, pattern, text []byte, start int) {
		if len(pattern) == 0 || len(pattern) > 128 || len(text) > 1<<16 {
			t.Skip()
		}
		ix, err := suffix.Build(pattern)
		if err != nil {
			t.Skip()
		}

		want := naiveFindAt(pattern, text, start)
		for _, config := range fuzzConfigs {
			m, err := New(ix, config)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if got := m.FindAt(text, start); got != want {
				t.Errorf("%v: FindAt(%q in %q, %d) = %d, want %d",
					m.Strategy(), pattern, text, start, got, want)
			}
		}
	})
}

func FuzzFindAll(f *testing.F) {
	f.Add([]byte("abab"), []byte("abababab"))
	f.Add([]byte("aa"), []byte("aaaaaa"))
	f.Add([]byte("aabaa"), []byte("aabaabaaabaa"))
	f.Add([]byte("the"), []byte("the cat sat on the mat"))
	f.Add([]byte{0x00}, []byte{0x00, 0x01, 0x00})

	f.Fuzz(func(t *testing.T, pattern, text []byte) {
		if len(pattern) == 0 || len(pattern) > 128 || len(text) > 1<<16 {
			t.Skip()
		}
		ix, err := suffix.Build(pattern)
		if err != nil {
			t.Skip()
		}

		want := naiveAll(pattern, text)
		for _, config := range fuzzConfigs {
			m, err := New(ix, config)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			got := m.FindAll(text, -1)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("%v: FindAll(%q in %q) = %v, want %v",
					m.Strategy(), pattern, text, got, want)
			}
			if count := m.Count(text, -1); count != len(want) {
				t.Errorf("%v: Count(%q in %q) = %d, want %d",
					m.Strategy(), pattern, text, count, len(want))
			}
		}
	})
}
