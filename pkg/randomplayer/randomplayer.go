// Package randomplayer implements a uniform-random Player, used as the
// search engine's benchmark opponent and as a cheap stand-in wherever a
// full search isn't warranted.
package randomplayer

import (
	"math/rand"

	"github.com/hexmcts/engine/pkg/hex"
	"github.com/hexmcts/engine/pkg/player"
)

// Player picks uniformly among the empty cells on every move.
type Player struct {
	board *hex.Board
	rng   *rand.Rand
	moves []hex.Move
}

var _ player.Player = (*Player)(nil)

// New creates a random player on a board of the given size. Its generator
// has a fixed seed, so a given sequence of calls yields the same moves.
func New(cols, rows int) *Player {
	return &Player{
		board: hex.NewBoard(cols, rows),
		rng:   rand.New(rand.NewSource(1)),
	}
}

// GenerateMove picks a uniformly random empty cell and plays it, or
// resigns if the board already has a winner or is full.
func (p *Player) GenerateMove(color hex.Color) hex.Move {
	if _, ok := p.board.Winner(); ok {
		return hex.ResignMove()
	}
	empty := p.board.EmptyCells()
	if len(empty) == 0 {
		return hex.ResignMove()
	}
	pos := empty[p.rng.Intn(len(empty))]
	m := hex.PlayMove(color, pos)
	p.PlayMove(m)
	return m
}

// PlayMove applies m to the internal board and records it for Undo.
func (p *Player) PlayMove(m hex.Move) bool {
	if !p.board.Play(m) {
		return false
	}
	p.moves = append(p.moves, m)
	return true
}

// Undo pops the last move and, if it was a placement, clears its cell.
func (p *Player) Undo() {
	if len(p.moves) == 0 {
		return
	}
	last := p.moves[len(p.moves)-1]
	p.moves = p.moves[:len(p.moves)-1]
	if last.Kind == hex.KindPlay {
		p.board.ClearCell(last.Pos)
	}
}

// Board returns the player's current board.
func (p *Player) Board() *hex.Board { return p.board }

// Name and Version identify this player to the text protocol.
func (p *Player) Name() string    { return "hexengine-random" }
func (p *Player) Version() string { return "1.0.0" }

// SetBoardSize resets the board (and move history) to a fresh one of the
// given size.
func (p *Player) SetBoardSize(cols, rows int) {
	p.board = hex.NewBoard(cols, rows)
	p.moves = nil
}
