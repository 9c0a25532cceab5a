package suffix

import (
	"sort"
)

// MaxPatternLen is the longest pattern Build accepts. Node IDs and run
// offsets are 32-bit, so the arena cannot address patterns beyond this.
const MaxPatternLen = 1 << 30

// Index is an immutable reversed-suffix index over a single pattern.
//
// Conceptually it is a trie holding, for every prefix length L of the
// pattern, the first L pattern bytes read right to left. Shared tails are
// merged, multi-byte runs are collapsed into chain nodes, and the node
// where each reversed prefix ends carries a boundary flag. Walking a text
// window right to left through the trie therefore answers two questions at
// once: does the window equal the pattern, and if not, how far can the
// window safely advance without skipping an occurrence.
//
// The deepest boundary passed during a walk identifies the longest pattern
// prefix that ends at the window's right edge. Shifting by P minus that
// depth aligns the pattern's start with that prefix, which is the smallest
// shift any occurrence overlapping the window could require. Divergence at
// depth D after no boundary allows the full shift P.
//
// An Index is safe for concurrent use by multiple goroutines.
type Index struct {
	// pattern is the index's own copy of the pattern bytes.
	// Chain runs are (offset, length) views into it.
	pattern []byte

	// root is the dense depth-0 dispatch table. root[b] is the node
	// reached after reading b as the last byte of a window, or NoNode.
	root [256]NodeID

	// nodes is the arena. Slot 0 is the shared terminal node.
	nodes []node

	// edges is the shared edge table for branch nodes.
	edges []edge

	// shift is the depth-1 shift table: shift[b] is the safe window
	// advance after a mismatch against the window's last byte b.
	shift [256]int32

	// period is the distance between the starts of two closest possible
	// occurrences, P minus the longest proper border of the pattern.
	period int

	branches int
	chains   int
}

// Build constructs the index for pattern in O(P) time and nodes.
//
// The pattern bytes are copied; the caller may reuse the slice afterward.
// Build fails only for an empty pattern (ErrEmptyPattern) or one exceeding
// MaxPatternLen (ErrPatternTooLong), both wrapped in a *BuildError.
func Build(pattern []byte) (*Index, error) {
	if len(pattern) == 0 {
		return nil, &BuildError{Err: ErrEmptyPattern}
	}
	if len(pattern) > MaxPatternLen {
		return nil, &BuildError{Pattern: string(pattern[:32]) + "...", Err: ErrPatternTooLong}
	}

	pat := make([]byte, len(pattern))
	copy(pat, pattern)

	b := newBuilder(pat)
	for i := range b.rev {
		b.extend(int32(i))
	}
	b.finalize()

	ix := b.freeze(pat)
	ix.buildShiftTable()

	// Walking the pattern through its own index reports the shift to use
	// after a full match, which is exactly the pattern's smallest period.
	_, period, _ := ix.WalkWindow(pat, 0)
	ix.period = period
	return ix, nil
}

// WalkWindow scans the window text[pos : pos+P] right to left through the
// trie and reports whether the window equals the pattern, together with a
// safe shift and the depth reached.
//
// The caller must guarantee pos >= 0 and pos+P <= len(text).
//
// Shift semantics:
//   - On a mismatch, shift is P minus the deepest boundary passed, the
//     largest advance that cannot skip an occurrence overlapping this
//     window. With no boundary passed it is the full P.
//   - On a match, shift is the pattern's period: the distance to the
//     nearest possible overlapping occurrence.
//
// Depth is the number of window bytes that matched, counted from the
// window's right edge.
func (ix *Index) WalkWindow(text []byte, pos int) (match bool, shift, depth int) {
	pat := ix.pattern
	plen := len(pat)
	end := pos + plen

	id := ix.root[text[end-1]]
	if id == NoNode {
		return false, plen, 0
	}

	// best tracks the deepest boundary strictly shallower than a full
	// match. After a full match it is the longest proper border, so the
	// returned shift doubles as the pattern's period.
	best := 0
	depth = 1
	skip := 1 // the dispatch byte pre-matched the run's last byte
	for {
		n := &ix.nodes[id]
		switch n.kind {
		case KindChain:
			runEnd := int(n.runOff + n.runLen)
			for k := skip; k < int(n.runLen); k++ {
				if text[end-1-depth] != pat[runEnd-1-k] {
					return false, plen - best, depth
				}
				depth++
			}
			if depth == plen {
				return true, plen - best, depth
			}
			if n.boundary {
				best = depth
			}
			id = n.next
			skip = 0

		case KindBranch:
			id = ix.edgeTarget(n, text[end-1-depth])
			if id == NoNode {
				return false, plen - best, depth
			}
			depth++
			skip = 1

		default: // KindTerminal
			return false, plen - best, depth
		}
	}
}

// edgeTarget resolves a branch dispatch byte to its child node.
// Branch fan-out is small in practice, so a linear scan over the sorted
// edge slice beats a binary search here.
func (ix *Index) edgeTarget(n *node, b byte) NodeID {
	for _, e := range ix.edges[n.edgeLo:n.edgeHi] {
		if e.b == b {
			return e.next
		}
		if e.b > b {
			break
		}
	}
	return NoNode
}

// Pattern returns the indexed pattern bytes.
// The slice is shared and must not be modified.
func (ix *Index) Pattern() []byte {
	return ix.pattern
}

// PatternLen returns the pattern length in bytes.
func (ix *Index) PatternLen() int {
	return len(ix.pattern)
}

// Period returns the pattern's smallest period: the safe and complete
// window advance after a full match. A pattern with no repetition
// structure has period P; "abab" has period 2, "aaaa" has period 1.
func (ix *Index) Period() int {
	return ix.period
}

// Shift returns the depth-1 table shift for a window whose last byte is b.
// It equals P-1-i for the rightmost i < P-1 with pattern[i] == b, or P
// when b occurs nowhere else in the pattern.
func (ix *Index) Shift(b byte) int {
	return int(ix.shift[b])
}

// ShiftTable returns a copy of the full depth-1 shift table.
func (ix *Index) ShiftTable() [256]int32 {
	return ix.shift
}

// NodeCount returns the number of arena nodes, including the shared
// terminal. The count is O(P): at most one chain per indexed prefix plus
// one chain and one branch per distinct branching point.
func (ix *Index) NodeCount() int {
	return len(ix.nodes)
}

// KindCounts returns the number of branch, chain and terminal nodes.
func (ix *Index) KindCounts() (branches, chains, terminals int) {
	return ix.branches, ix.chains, 1
}

// BoundaryDepths returns the sorted depths at which boundary flags sit.
// Every pattern prefix length from 1 to P appears exactly once; the trie
// would otherwise compute unsafe shifts.
func (ix *Index) BoundaryDepths() []int {
	type item struct {
		id    NodeID
		depth int
	}
	stack := make([]item, 0, 16)
	for b := 0; b < 256; b++ {
		if id := ix.root[b]; id != NoNode {
			stack = append(stack, item{id, 0})
		}
	}

	var depths []int
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &ix.nodes[it.id]
		switch n.kind {
		case KindChain:
			d := it.depth + int(n.runLen)
			if n.boundary {
				depths = append(depths, d)
			}
			if n.next != terminalNode {
				stack = append(stack, item{n.next, d})
			}
		case KindBranch:
			for _, e := range ix.edges[n.edgeLo:n.edgeHi] {
				stack = append(stack, item{e.next, it.depth})
			}
		}
	}
	sort.Ints(depths)
	return depths
}
