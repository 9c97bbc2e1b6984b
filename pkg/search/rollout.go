package search

import (
	"math/rand"

	"github.com/hexmcts/engine/pkg/hex"
)

// mustPlay computes the forced reply on board, from the perspective of
// toPlay: the save-the-bridge heuristic. If the last move was a placement,
// its six neighbours are scanned (starting at a random direction, so
// repeated calls don't bias toward one bridge orientation) looking for two
// same-colored stones two apart with an empty carrier between them; if
// found, completing that carrier is the forced move. Otherwise there is no
// forced move (Pass).
func mustPlay(b *hex.Board, toPlay hex.Color, rng *rand.Rand) hex.Move {
	if _, ok := b.Winner(); ok {
		return hex.ResignMove()
	}

	last := b.LastMove()
	if last.Kind != hex.KindPlay {
		return hex.PassMove()
	}

	start := rng.Intn(6)
	for k := 0; k < 6; k++ {
		i := (start + k) % 6
		a := last.Pos.Neighbor(i)
		bb := last.Pos.Neighbor((i + 2) % 6)
		r := last.Pos.Neighbor((i + 1) % 6)

		ca, okA := b.Get(a)
		cb, okB := b.Get(bb)
		if okA && okB && ca == toPlay && cb == toPlay && b.OnBoard(r) && b.IsEmpty(r) {
			return hex.PlayMove(toPlay, r)
		}
	}
	return hex.PassMove()
}

// rollout plays uniform-random moves (with the save-the-bridge override)
// from b's current state until the board has a winner, mutating b in
// place. It returns the winner and the full set of cells occupied at the
// end of the rollout (played_set in spec terms: every tree move plus every
// random move), which the caller credits to RAVE statistics.
//
// The remaining empty cells are tracked in a shrinking local set (rather
// than re-scanning the whole board for each random move) so a rollout costs
// O(area), not O(area^2).
func rollout(b *hex.Board, rng *rand.Rand) (hex.Color, []hex.Pos) {
	remaining := newEmptySet(b)

	for {
		if w, ok := b.Winner(); ok {
			return w, b.FilledCells()
		}

		toPlay := b.ToPlay()
		mv := mustPlay(b, toPlay, rng)

		switch mv.Kind {
		case hex.KindResign:
			w, _ := b.Winner()
			return w, b.FilledCells()
		case hex.KindPass:
			pos := remaining.takeRandom(rng)
			b.Play(hex.PlayMove(toPlay, pos))
		default:
			b.Play(mv)
			remaining.remove(mv.Pos)
		}
	}
}

// emptySet is a shrinking, O(1)-removal set of board positions: a slice
// plus an index map so removing an arbitrary element is a swap-with-last
// instead of a linear scan.
type emptySet struct {
	cells []hex.Pos
	index map[hex.Pos]int
}

func newEmptySet(b *hex.Board) *emptySet {
	cells := b.EmptyCells()
	index := make(map[hex.Pos]int, len(cells))
	for i, p := range cells {
		index[p] = i
	}
	return &emptySet{cells: cells, index: index}
}

// takeRandom removes and returns a uniformly random remaining cell.
func (s *emptySet) takeRandom(rng *rand.Rand) hex.Pos {
	i := rng.Intn(len(s.cells))
	p := s.cells[i]
	s.removeAt(i)
	return p
}

// remove drops p from the set if present (a no-op otherwise, since a
// save-the-bridge move always targets a cell still tracked as empty).
func (s *emptySet) remove(p hex.Pos) {
	if i, ok := s.index[p]; ok {
		s.removeAt(i)
	}
}

func (s *emptySet) removeAt(i int) {
	last := len(s.cells) - 1
	removed := s.cells[i]
	s.cells[i] = s.cells[last]
	if i != last {
		s.index[s.cells[i]] = i
	}
	s.cells = s.cells[:last]
	delete(s.index, removed)
}
