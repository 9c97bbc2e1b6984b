package search

import (
	"math/rand"

	"github.com/hexmcts/engine/pkg/hex"
)

// newRoot builds a fresh root node for board, pre-expanding it unless the
// position is already decided.
func newRoot(board *hex.Board) *Node {
	root := NewNode(nil, hex.Move{})
	expandIfNeeded(root, board)
	return root
}

// expandIfNeeded publishes board's legal moves as root's children, unless
// the position already has a winner.
func expandIfNeeded(node *Node, board *hex.Board) {
	if _, ok := board.Winner(); ok {
		node.SetTerminal(true)
		return
	}
	toPlay := board.ToPlay()
	empties := board.EmptyCells()
	children := make([]*Node, len(empties))
	for i, p := range empties {
		children[i] = NewNode(node, hex.PlayMove(toPlay, p))
	}
	node.Expand(children)
}

// runCycle executes one selection -> expansion -> rollout -> backup cycle
// starting from root, using a private clone of rootBoard as scratch space.
// It returns the tree depth the selection/expansion phase reached.
func runCycle(root *Node, rootBoard *hex.Board, rng *rand.Rand, cfg *Config) int {
	b := rootBoard.Clone()
	node := root
	depth := 0

	for node.Expanded() && !node.Terminal() {
		child := SelectChild(node, cfg)
		if child == nil {
			break
		}
		child.Stats.AddVvl(VirtualLoss, VirtualLoss)
		b.Play(child.Move)
		node = child
		depth++
	}

	if _, ok := b.Winner(); ok {
		node.SetTerminal(true)
	} else if !node.Expanded() {
		toPlay := b.ToPlay()
		empties := b.EmptyCells()
		candidates := make([]*Node, len(empties))
		for i, p := range empties {
			candidates[i] = NewNode(node, hex.PlayMove(toPlay, p))
		}
		children := node.Expand(candidates)
		if len(children) > 0 {
			pick := children[rng.Intn(len(children))]
			pick.Stats.AddVvl(VirtualLoss, VirtualLoss)
			b.Play(pick.Move)
			node = pick
			depth++
		}
	}

	outcome, played := rollout(b, rng)
	backpropagate(node, outcome, played)
	return depth
}
