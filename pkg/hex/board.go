package hex

// Board is a Hex board with incrementally-maintained connectivity: each
// color keeps its own union-find forest over all board cells plus two
// sentinel "edge" nodes (its two target sides), so "has a side connected
// its two edges" is a single Find call after each move.
//
// Black connects the top (y=0) and bottom (y=Rows-1) edges. White connects
// the left (x=0) and right (x=Cols-1) edges. Off-board neighbour queries
// return the color of the edge being queried (virtual rows above/below the
// board are Black, virtual columns left/right of it are White, and the
// four corner extensions are undefined) so the connectivity update can
// treat board edges and off-board edges uniformly.
type Board struct {
	Cols, Rows int

	colors []Color
	empty  []bool

	groups [2]*UnionFind // groups[Black], groups[White]

	toPlay   Color
	lastMove Move
	winner   *Color
}

// edge node indices within a color's union-find forest: the forest has
// Cols*Rows+2 nodes, the last two reserved for that color's two target
// edges.
func (b *Board) edge0Index() int32 { return int32(b.Cols * b.Rows) }
func (b *Board) edge1Index() int32 { return int32(b.Cols*b.Rows) + 1 }

// NewBoard creates an empty board of the given size, Black to play.
func NewBoard(cols, rows int) *Board {
	area := cols * rows
	b := &Board{
		Cols:     cols,
		Rows:     rows,
		colors:   make([]Color, area),
		empty:    make([]bool, area),
		toPlay:   Black,
		lastMove: PassMove(),
	}
	for i := range b.empty {
		b.empty[i] = true
	}
	b.groups[Black] = NewUnionFind(area + 2)
	b.groups[White] = NewUnionFind(area + 2)
	return b
}

// idx linearizes an on-board position as y*Cols+x.
func (b *Board) idx(p Pos) int32 {
	return int32(p.Y)*int32(b.Cols) + int32(p.X)
}

// OnBoard reports whether p names a real board cell.
func (b *Board) OnBoard(p Pos) bool {
	return p.X >= 0 && int(p.X) < b.Cols && p.Y >= 0 && int(p.Y) < b.Rows
}

// edgeColorAt classifies an off-board position as belonging to a color's
// virtual edge. ok is false for the four undefined corner extensions.
func (b *Board) edgeColorAt(p Pos) (c Color, ok bool) {
	xOut := p.X < 0 || int(p.X) >= b.Cols
	yOut := p.Y < 0 || int(p.Y) >= b.Rows
	switch {
	case xOut && yOut:
		return 0, false
	case yOut:
		return Black, true
	case xOut:
		return White, true
	default:
		return 0, false
	}
}

// Get returns the color occupying p and whether it is occupied. For
// off-board p it instead reports the color of the virtual edge at that
// position (see edgeColorAt), letting callers treat board and off-board
// neighbours uniformly.
func (b *Board) Get(p Pos) (Color, bool) {
	if b.OnBoard(p) {
		i := b.idx(p)
		if b.empty[i] {
			return 0, false
		}
		return b.colors[i], true
	}
	return b.edgeColorAt(p)
}

// IsEmpty reports whether an on-board cell has no stone.
func (b *Board) IsEmpty(p Pos) bool {
	c, occ := b.Get(p)
	_ = c
	return !occ
}

// ToPlay returns the color whose turn it is.
func (b *Board) ToPlay() Color { return b.toPlay }

// SetToPlay forces whose turn it is, without touching the board or tree.
func (b *Board) SetToPlay(c Color) { b.toPlay = c }

// LastMove returns the most recently played move (used by the
// save-the-bridge rollout heuristic).
func (b *Board) LastMove() Move { return b.lastMove }

// Winner returns the cached connection winner, if any.
func (b *Board) Winner() (Color, bool) {
	if b.winner == nil {
		return 0, false
	}
	return *b.winner, true
}

// Play applies a move to the board. Pass and Resign are no-ops on cell
// state (only last_move is updated); Play{color,pos} fails (returns
// false, leaving the board untouched) when pos is off-board or occupied.
func (b *Board) Play(m Move) bool {
	switch m.Kind {
	case KindPass, KindResign:
		b.lastMove = m
		return true
	default:
		if !b.OnBoard(m.Pos) || !b.IsEmpty(m.Pos) {
			return false
		}
		b.Set(m.Pos, m.Color)
		b.toPlay = m.Color.Invert()
		b.lastMove = m
		return true
	}
}

// Set unconditionally writes a stone at pos, unions it with every
// same-colored neighbour (and, where applicable, the color's edge
// sentinel), and refreshes the cached winner.
func (b *Board) Set(pos Pos, c Color) {
	i := b.idx(pos)
	b.colors[i] = c
	b.empty[i] = false
	b.unionNeighbours(pos, c)
	b.refreshWinner()
}

// ClearCell removes the stone at pos (used by undo) and rebuilds both
// union-find forests from the remaining occupied cells, since removing a
// stone can invalidate arbitrary past merges.
func (b *Board) ClearCell(pos Pos) {
	i := b.idx(pos)
	b.empty[i] = true
	b.rebuildGroups()
}

func (b *Board) unionNeighbours(pos Pos, c Color) {
	uf := b.groups[c]
	pidx := b.idx(pos)
	for dir := 0; dir < 6; dir++ {
		np := pos.Neighbor(dir)
		if b.OnBoard(np) {
			nc, occ := b.Get(np)
			if occ && nc == c {
				uf.Union(pidx, b.idx(np))
			}
			continue
		}
		ec, ok := b.edgeColorAt(np)
		if !ok || ec != c {
			continue
		}
		if c == Black {
			if np.Y < 0 {
				uf.Union(pidx, b.edge0Index())
			} else {
				uf.Union(pidx, b.edge1Index())
			}
		} else {
			if np.X < 0 {
				uf.Union(pidx, b.edge0Index())
			} else {
				uf.Union(pidx, b.edge1Index())
			}
		}
	}
}

// rebuildGroups re-derives both union-find forests from scratch by
// replaying unionNeighbours over every occupied cell. O(area*alpha); only
// runs on undo, never in the search hot path.
func (b *Board) rebuildGroups() {
	area := b.Cols * b.Rows
	b.groups[Black] = NewUnionFind(area + 2)
	b.groups[White] = NewUnionFind(area + 2)
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			p := Pos{int8(x), int8(y)}
			if c, occ := b.Get(p); occ {
				b.unionNeighbours(p, c)
			}
		}
	}
	b.refreshWinner()
}

func (b *Board) refreshWinner() {
	for _, c := range [2]Color{Black, White} {
		if b.groups[c].Connected(b.edge0Index(), b.edge1Index()) {
			w := c
			b.winner = &w
			return
		}
	}
	b.winner = nil
}

// EmptyCells returns every unoccupied on-board position.
func (b *Board) EmptyCells() []Pos {
	cells := make([]Pos, 0, len(b.empty))
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			if b.empty[y*b.Cols+x] {
				cells = append(cells, Pos{int8(x), int8(y)})
			}
		}
	}
	return cells
}

// FilledCells returns every occupied on-board position.
func (b *Board) FilledCells() []Pos {
	cells := make([]Pos, 0, len(b.colors))
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			if !b.empty[y*b.Cols+x] {
				cells = append(cells, Pos{int8(x), int8(y)})
			}
		}
	}
	return cells
}

// Clone deep-copies the board, including both union-find forests, so a
// search worker can simulate moves on its own copy.
func (b *Board) Clone() *Board {
	clone := &Board{
		Cols:     b.Cols,
		Rows:     b.Rows,
		colors:   append([]Color(nil), b.colors...),
		empty:    append([]bool(nil), b.empty...),
		toPlay:   b.toPlay,
		lastMove: b.lastMove,
	}
	clone.groups[Black] = b.groups[Black].clone()
	clone.groups[White] = b.groups[White].clone()
	if b.winner != nil {
		w := *b.winner
		clone.winner = &w
	}
	return clone
}
