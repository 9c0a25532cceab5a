package suffix

import (
	"testing"
)

// naiveTableShift is the depth-1 shift definition applied directly:
// align the rightmost occurrence of b at an index below P-1 under the
// window's last byte, or advance the full pattern length.
func naiveTableShift(pattern []byte, b byte) int {
	plen := len(pattern)
	for i := plen - 2; i >= 0; i-- {
		if pattern[i] == b {
			return plen - 1 - i
		}
	}
	return plen
}

func TestShiftTableAgainstDefinition(t *testing.T) {
	patterns := []string{
		"x",
		"ab",
		"aa",
		"abcb",
		"abab",
		"aaaa",
		"the",
		"mississippi",
		"abcdefghijklmnopqrstuvwxyz",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			ix := mustBuild(t, pattern)
			for b := 0; b < 256; b++ {
				want := naiveTableShift([]byte(pattern), byte(b))
				if got := ix.Shift(byte(b)); got != want {
					t.Errorf("Shift(%q, 0x%02x) = %d, want %d", pattern, b, got, want)
				}
			}
		})
	}
}

func TestShiftTableValues(t *testing.T) {
	ix := mustBuild(t, "abcb")
	tests := []struct {
		b    byte
		want int
	}{
		{'a', 3},
		{'b', 2}, // rightmost 'b' below the last position is index 1
		{'c', 1},
		{'z', 4},
	}
	for _, tc := range tests {
		if got := ix.Shift(tc.b); got != tc.want {
			t.Errorf("Shift(%q) = %d, want %d", tc.b, got, tc.want)
		}
	}
}

func TestShiftBounds(t *testing.T) {
	for _, pattern := range []string{"a", "ab", "abcb", "aaaa", "mississippi"} {
		ix := mustBuild(t, pattern)
		for b := 0; b < 256; b++ {
			s := ix.Shift(byte(b))
			if s < 1 || s > len(pattern) {
				t.Fatalf("Shift(%q, 0x%02x) = %d out of [1, %d]", pattern, b, s, len(pattern))
			}
		}
	}
}

// TestShiftMatchesWalkForAbsentBytes pins the one case where the table
// and the walk must agree exactly: a window ending in a byte the pattern
// does not contain diverges at the root on both paths and allows the
// full shift.
func TestShiftMatchesWalkForAbsentBytes(t *testing.T) {
	ix := mustBuild(t, "band")
	window := []byte("banz")

	match, walkShift, depth := ix.WalkWindow(window, 0)
	if match || depth != 0 {
		t.Fatalf("WalkWindow = (%v, %d, %d), want root divergence", match, walkShift, depth)
	}
	if tableShift := ix.Shift('z'); tableShift != walkShift {
		t.Errorf("table shift %d != walk shift %d for absent byte", tableShift, walkShift)
	}
	if walkShift != 4 {
		t.Errorf("absent byte shift = %d, want full pattern length", walkShift)
	}
}

func TestShiftTableCopy(t *testing.T) {
	ix := mustBuild(t, "abcb")
	table := ix.ShiftTable()
	table['a'] = 99
	if ix.Shift('a') == 99 {
		t.Error("ShiftTable() must return a copy, not the live table")
	}
}
