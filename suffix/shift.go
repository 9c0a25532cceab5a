package suffix

// The depth-1 shift table collapses the most common walk outcome into a
// single array lookup. When a window's last byte b occurs nowhere in the
// pattern, the walk diverges at the root and allows the full shift P; the
// table stores exactly that. When b does occur, the table aligns the
// rightmost occurrence at index i < P-1 under the window's last byte, a
// shift of P-1-i. That is the largest advance that provably cannot skip
// an occurrence using only one inspected byte, so it is always safe to
// apply without walking, and matchers may take the maximum of the table
// shift and a walk shift since both are individually safe.
//
// Entries deliberately ignore the pattern's last position: a window whose
// last byte equals pattern[P-1] needs verification, not a shift of zero.

// buildShiftTable fills ix.shift from the pattern. Scanning left to right
// leaves the rightmost qualifying occurrence in each slot.
func (ix *Index) buildShiftTable() {
	plen := len(ix.pattern)
	for i := range ix.shift {
		ix.shift[i] = int32(plen)
	}
	for i := 0; i < plen-1; i++ {
		ix.shift[ix.pattern[i]] = int32(plen - 1 - i)
	}
}
