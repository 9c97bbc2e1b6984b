package search

import (
	"sync/atomic"

	"github.com/hexmcts/engine/pkg/hex"
)

// Node is one position in the search tree: the move that led here, its
// RAVE-enriched statistics, and a one-shot child list. Children are
// published exactly once via AtomicInitCell, so two workers racing to
// expand the same leaf never see half-built state; the loser just adopts
// whatever the winner published.
type Node struct {
	Move   hex.Move
	Parent *Node

	Stats RaveStats

	children AtomicInitCell[*Node]
	terminal atomic.Bool
}

// NewNode builds a detached node for the given move.
func NewNode(parent *Node, move hex.Move) *Node {
	return &Node{Parent: parent, Move: move}
}

// Expanded reports whether this node's children have been published.
func (n *Node) Expanded() bool {
	return n.children.Initialized()
}

// Children returns the published child list, or nil before expansion.
func (n *Node) Children() []*Node {
	return n.children.Slice()
}

// Expand publishes children for this node, returning whichever slice won
// the race (our own, if we got there first).
func (n *Node) Expand(children []*Node) []*Node {
	return n.children.Init(children)
}

// Terminal reports whether this node represents a finished game (no legal
// moves, or the board already has a winner).
func (n *Node) Terminal() bool {
	return n.terminal.Load()
}

// SetTerminal marks this node as terminal.
func (n *Node) SetTerminal(terminal bool) {
	n.terminal.Store(terminal)
}
