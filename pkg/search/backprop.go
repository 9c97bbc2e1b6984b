package search

import "github.com/hexmcts/engine/pkg/hex"

// backpropagate credits a finished rollout back up the tree from node to
// the root. reward is 1 at a given node iff that node's own move belongs
// to the color that eventually won, and flips at every level (since
// adjacent plies belong to opposing players). Every sibling of the
// climbed-through node whose move appears anywhere in playedCells — the
// rollout's full played set, the "all-moves-as-first" heuristic — gets
// its RAVE counters credited with the same reward, not just the move
// actually selected.
func backpropagate(node *Node, outcome hex.Color, playedCells []hex.Pos) {
	played := make(map[hex.Pos]bool, len(playedCells))
	for _, p := range playedCells {
		played[p] = true
	}

	reward := 0.0
	if node.Move.Kind == hex.KindPlay && node.Move.Color == outcome {
		reward = 1
	}

	for node != nil {
		parent := node.Parent
		if parent != nil {
			node.Stats.AddVvl(1-VirtualLoss, -VirtualLoss)
		} else {
			node.Stats.AddVvl(1, 0)
		}
		node.Stats.AddQ(reward)

		if node.Move.Kind == hex.KindPlay {
			played[node.Move.Pos] = true
		}

		if parent != nil {
			for _, sibling := range parent.Children() {
				if sibling.Move.Kind == hex.KindPlay && played[sibling.Move.Pos] {
					sibling.Stats.AddQRAVE(reward)
					sibling.Stats.AddNRAVE(1)
				}
			}
		}

		reward = 1 - reward
		node = parent
	}
}
