package suffix

import (
	"sort"

	"github.com/coregx/substring/internal/conv"
)

// Index construction runs in two phases.
//
// Phase one builds a suffix tree over the reversed pattern with Ukkonen's
// online algorithm. Inserting every suffix of the reversed pattern is the
// same as inserting every prefix of the pattern read right to left, which
// is exactly the set of strings the window walk needs. The builder uses
// growable nodes with per-node child maps and an (activeNode, activeEdge,
// activeLength) point, extending the tree one reversed-pattern byte at a
// time in amortized O(1) node operations. Highly periodic patterns such as
// "aaaa" stay linear: repeated content collapses into shared edges instead
// of new nodes.
//
// A terminator byte would force every suffix to end at a leaf, but the
// alphabet is all 256 byte values, so none is available. finalize instead
// replays the pending suffixes once more: a suffix ending in the middle of
// an edge splits that edge purely to place a boundary flag at the exact
// depth, and a suffix ending on an existing node flags it in place. The
// splits add no branching, at most one node per pattern prefix.
//
// Phase two (freeze) converts the mutable tree into the Index arena:
// every edge label becomes a chain node viewing the pattern bytes, nodes
// with two or more children additionally get a branch node with a sorted
// edge slice, and all leaf chains share one terminal node.

const (
	// root is the builder slot of the tree root.
	root int32 = 0

	// openEnd marks a leaf edge that grows with the current phase.
	openEnd int32 = -1
)

// buildNode is one mutable tree node. Its edge label is rev[start:end],
// the label of the edge arriving from the parent.
type buildNode struct {
	start    int32
	end      int32 // exclusive; openEnd while growing
	link     int32 // suffix link; the zero value points at the root
	children map[byte]int32
	boundary bool
}

// builder carries the in-progress tree and the Ukkonen active point.
type builder struct {
	rev   []byte // pattern reversed; edge labels index into it
	nodes []buildNode

	activeNode int32
	activeEdge int32 // index into rev of the first unmatched byte below activeNode
	activeLen  int32
	remainder  int32 // suffixes not yet explicitly inserted
}

func newBuilder(pat []byte) *builder {
	rev := make([]byte, len(pat))
	for i, c := range pat {
		rev[len(pat)-1-i] = c
	}
	b := &builder{
		rev:   rev,
		nodes: make([]buildNode, 0, 2*len(pat)+2),
	}
	b.newNode(0, 0)
	return b
}

// newNode appends a node and returns its slot. Callers must not hold
// node pointers across this call: the backing array may move.
func (b *builder) newNode(start, end int32) int32 {
	b.nodes = append(b.nodes, buildNode{start: start, end: end})
	return conv.IntToInt32(len(b.nodes) - 1)
}

func (b *builder) child(id int32, c byte) (int32, bool) {
	next, ok := b.nodes[id].children[c]
	return next, ok
}

func (b *builder) setChild(id int32, c byte, child int32) {
	if b.nodes[id].children == nil {
		b.nodes[id].children = make(map[byte]int32)
	}
	b.nodes[id].children[c] = child
}

// edgeLen returns the label length of the edge into id during phase pos.
// Open leaf edges extend through the byte being inserted.
func (b *builder) edgeLen(id, pos int32) int32 {
	if b.nodes[id].end == openEnd {
		return pos + 1 - b.nodes[id].start
	}
	return b.nodes[id].end - b.nodes[id].start
}

// splitEdge breaks the edge from parent to child after its first at bytes
// and returns the new node carrying the upper part.
func (b *builder) splitEdge(parent, child, at int32) int32 {
	start := b.nodes[child].start
	split := b.newNode(start, start+at)
	b.setChild(parent, b.rev[start], split)
	b.nodes[child].start = start + at
	b.setChild(split, b.rev[start+at], child)
	return split
}

// extend runs one Ukkonen phase, inserting rev[pos] into the tree.
func (b *builder) extend(pos int32) {
	b.remainder++
	last := int32(-1) // internal node created by the previous extension, if any
	c := b.rev[pos]

	for b.remainder > 0 {
		if b.activeLen == 0 {
			b.activeEdge = pos
		}
		next, ok := b.child(b.activeNode, b.rev[b.activeEdge])
		if !ok {
			// No edge starts with the active byte: grow a new leaf.
			leaf := b.newNode(pos, openEnd)
			b.setChild(b.activeNode, b.rev[b.activeEdge], leaf)
			if last != -1 {
				b.nodes[last].link = b.activeNode
				last = -1
			}
		} else {
			if el := b.edgeLen(next, pos); b.activeLen >= el {
				// The active point lies past this edge: walk down
				// and retry the same extension from the child.
				b.activeNode = next
				b.activeEdge += el
				b.activeLen -= el
				continue
			}
			if b.rev[b.nodes[next].start+b.activeLen] == c {
				// The byte is already on the edge. Everything
				// shorter is implicitly present too: end the phase.
				if last != -1 && b.activeNode != root {
					b.nodes[last].link = b.activeNode
				}
				b.activeLen++
				return
			}
			// The edge diverges mid-label: split it and hang a new
			// leaf off the split point.
			split := b.splitEdge(b.activeNode, next, b.activeLen)
			leaf := b.newNode(pos, openEnd)
			b.setChild(split, c, leaf)
			if last != -1 {
				b.nodes[last].link = split
			}
			last = split
		}

		b.remainder--
		if b.activeNode == root && b.activeLen > 0 {
			b.activeLen--
			b.activeEdge = pos - b.remainder + 1
		} else if b.activeNode != root {
			b.activeNode = b.nodes[b.activeNode].link
		}
	}
}

// finalEdgeLen is edgeLen after all phases: leaf edges reach the end.
func (b *builder) finalEdgeLen(id, n int32) int32 {
	if b.nodes[id].end == openEnd {
		return n - b.nodes[id].start
	}
	return b.nodes[id].end - b.nodes[id].start
}

// finalize makes every suffix end explicit and flags it as a boundary.
//
// Each leaf already ends one complete suffix. The remainder suffixes are
// those that also occur elsewhere in the reversed pattern; they end inside
// the tree. Replaying them through the active point, exactly as a phase
// with an unmatchable terminator would, either flags an existing node in
// place or splits an edge without adding branching. Suffix links keep the
// replay amortized O(1) per suffix.
func (b *builder) finalize() {
	n := int32(len(b.rev))

	for i := 1; i < len(b.nodes); i++ {
		if b.nodes[i].children == nil {
			b.nodes[i].boundary = true
		}
	}

	last := int32(-1)
	for b.remainder > 0 {
		if b.activeLen == 0 {
			// The pending suffix ends exactly on this node.
			b.nodes[b.activeNode].boundary = true
			if last != -1 {
				b.nodes[last].link = b.activeNode
				last = -1
			}
		} else {
			next, ok := b.child(b.activeNode, b.rev[b.activeEdge])
			if !ok {
				break // unreachable: every pending suffix is in the tree
			}
			if el := b.finalEdgeLen(next, n); b.activeLen >= el {
				b.activeNode = next
				b.activeEdge += el
				b.activeLen -= el
				continue
			}
			split := b.splitEdge(b.activeNode, next, b.activeLen)
			b.nodes[split].boundary = true
			if last != -1 {
				b.nodes[last].link = split
			}
			last = split
		}

		b.remainder--
		if b.activeNode == root && b.activeLen > 0 {
			b.activeLen--
			b.activeEdge = n - b.remainder
		} else if b.activeNode != root {
			b.activeNode = b.nodes[b.activeNode].link
		}
	}
}

// freeze converts the mutable tree into the immutable arena form.
//
// Traversal is an explicit stack, not recursion: a maximally periodic
// pattern produces a boundary split at every depth, and the resulting
// chain of P nodes would overflow the goroutine stack long before the
// arena becomes large.
func (b *builder) freeze(pat []byte) *Index {
	ix := &Index{pattern: pat}
	for i := range ix.root {
		ix.root[i] = NoNode
	}
	ix.nodes = make([]node, 1, len(b.nodes)+1)
	ix.nodes[0] = node{kind: KindTerminal}

	n := int32(len(b.rev))

	type frame struct {
		bid    int32  // builder node to convert
		parent NodeID // NoNode: patch ix.root[slot]
		slot   int32  // root byte, edge table index, or -1 for a chain's next
	}

	stack := make([]frame, 0, 64)
	for c := 255; c >= 0; c-- {
		if id, ok := b.child(root, byte(c)); ok {
			stack = append(stack, frame{bid: id, parent: NoNode, slot: int32(c)})
		}
	}

	var keys []byte
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		bn := &b.nodes[f.bid]
		end := bn.end
		if end == openEnd {
			end = n
		}

		// rev[start:end] is pattern[n-end:n-start] reversed, so the
		// stored view converts to pattern coordinates.
		cid := NodeID(conv.IntToUint32(len(ix.nodes)))
		ix.nodes = append(ix.nodes, node{
			kind:     KindChain,
			boundary: bn.boundary,
			runOff:   n - end,
			runLen:   end - bn.start,
			next:     terminalNode,
		})
		ix.chains++

		switch {
		case f.parent == NoNode:
			ix.root[f.slot] = cid
		case f.slot >= 0:
			ix.edges[f.slot].next = cid
		default:
			ix.nodes[f.parent].next = cid
		}

		switch len(bn.children) {
		case 0:
			// Leaf: the chain keeps pointing at the shared terminal.
		case 1:
			for _, child := range bn.children {
				stack = append(stack, frame{bid: child, parent: cid, slot: -1})
			}
		default:
			keys = keys[:0]
			for c := range bn.children {
				keys = append(keys, c)
			}
			sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

			brid := NodeID(conv.IntToUint32(len(ix.nodes)))
			lo := conv.IntToInt32(len(ix.edges))
			ix.nodes = append(ix.nodes, node{
				kind:   KindBranch,
				edgeLo: lo,
				edgeHi: lo + int32(len(keys)),
			})
			ix.branches++
			ix.nodes[cid].next = brid

			for _, c := range keys {
				ix.edges = append(ix.edges, edge{b: c, next: NoNode})
			}
			for i := len(keys) - 1; i >= 0; i-- {
				stack = append(stack, frame{
					bid:    bn.children[keys[i]],
					parent: brid,
					slot:   lo + int32(i),
				})
			}
		}
	}
	return ix
}
