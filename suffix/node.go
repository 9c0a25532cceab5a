package suffix

import (
	"fmt"
)

// NodeID uniquely identifies a node in the index arena.
// This is a 32-bit unsigned integer for compact representation.
type NodeID uint32

// Special node constants
const (
	// NoNode represents an invalid/absent node ID
	NoNode NodeID = 0xFFFFFFFF

	// terminalNode is the arena slot of the single shared terminal node.
	// Every leaf chain ends there.
	terminalNode NodeID = 0
)

// NodeKind identifies the type of index node and determines which fields are valid.
type NodeKind uint8

const (
	// KindTerminal represents the end of a fully indexed suffix.
	// It has no outgoing bytes; a walk that reaches it with input left diverges.
	// The arena holds exactly one shared terminal node.
	KindTerminal NodeKind = iota

	// KindChain represents a run of bytes with exactly one possible
	// continuation. The run is stored as an (offset, length) view into the
	// pattern and compared back to front, so a chain of any length costs a
	// single arena node.
	KindChain

	// KindBranch represents a point with two or more distinct next bytes.
	// It stores a sorted slice of byte edges in the shared edge table.
	KindBranch
)

// String returns a human-readable representation of the NodeKind
func (k NodeKind) String() string {
	switch k {
	case KindTerminal:
		return "Terminal"
	case KindChain:
		return "Chain"
	case KindBranch:
		return "Branch"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// node is a single arena slot. The kind determines which fields are valid.
//
// Chain nodes view their run as pattern[runOff:runOff+runLen]. The window
// scan reads text right to left, so the run is consumed from its last byte
// toward its first. A chain entered through a dispatch byte has that byte
// pre-matched (it is the run's last byte in pattern order).
type node struct {
	kind NodeKind

	// boundary is true when the bytes consumed from the window so far,
	// read left to right, form a prefix of the pattern. Boundary flags
	// sit only at chain ends, never inside a run.
	boundary bool

	// For Chain: run view into the pattern and the sole successor
	runOff int32
	runLen int32
	next   NodeID

	// For Branch: half-open bounds into the shared edge table
	edgeLo int32
	edgeHi int32
}

// edge maps a single byte to its target node. Edges of one branch are
// stored contiguously and sorted by byte.
type edge struct {
	b    byte
	next NodeID
}
