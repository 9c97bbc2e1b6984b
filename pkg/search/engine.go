package search

import (
	"github.com/hexmcts/engine/pkg/hex"
	"github.com/hexmcts/engine/pkg/player"
)

// Engine is the MCTS+RAVE Player: it owns the board, the search tree, and
// the move history undo needs.
type Engine struct {
	cfg   *Config
	board *hex.Board
	tree  *Tree
	moves []hex.Move
}

var _ player.Player = (*Engine)(nil)

// NewEngine creates an engine for a board of the given size.
func NewEngine(cols, rows int, cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	board := hex.NewBoard(cols, rows)
	return &Engine{
		cfg:   cfg,
		board: board,
		tree:  NewTree(board, cfg),
	}
}

// SetListener attaches a stats listener to the engine's search tree.
func (e *Engine) SetListener(l *StatsListener) { e.tree.SetListener(l) }

// Tree exposes the underlying search tree, mainly for diagnostics
// (cycles, max depth, current evaluation).
func (e *Engine) Tree() *Tree { return e.tree }

// GenerateMove runs a parallel search for cfg.SearchTime and plays the
// most-visited root child. If the board is already decided it resigns
// without searching; if color doesn't match whose turn it is, the turn is
// forced and the tree discarded (the opponent sat out, or play was forced
// out of turn), matching how an external GTP controller can hand either
// color to generate_move.
func (e *Engine) GenerateMove(color hex.Color) hex.Move {
	if _, ok := e.board.Winner(); ok {
		return hex.ResignMove()
	}

	if color != e.board.ToPlay() {
		e.board.SetToPlay(color)
		e.tree = NewTree(e.board, e.cfg)
	}

	best := e.tree.Search(e.board)
	e.PlayMove(best)
	return best
}

// PlayMove applies m to the board, re-roots the search tree at the
// matching child when one exists, and records m for Undo.
func (e *Engine) PlayMove(m hex.Move) bool {
	if !e.board.Play(m) {
		return false
	}
	if !e.tree.MakeMove(m) {
		e.tree = NewTree(e.board, e.cfg)
	}
	e.moves = append(e.moves, m)
	return true
}

// Undo pops the last move, clears its cell if it was a placement, and
// rebuilds the search tree from the resulting position.
func (e *Engine) Undo() {
	if len(e.moves) == 0 {
		return
	}
	last := e.moves[len(e.moves)-1]
	e.moves = e.moves[:len(e.moves)-1]
	if last.Kind == hex.KindPlay {
		e.board.ClearCell(last.Pos)
		e.board.SetToPlay(last.Color)
		e.tree = NewTree(e.board, e.cfg)
	}
}

// Board returns the engine's current board.
func (e *Engine) Board() *hex.Board { return e.board }

// Name and Version identify this engine to the text protocol.
func (e *Engine) Name() string    { return "hexengine" }
func (e *Engine) Version() string { return "1.0.0" }

// SetBoardSize resets the board and search tree to a fresh position of
// the given size.
func (e *Engine) SetBoardSize(cols, rows int) {
	e.board = hex.NewBoard(cols, rows)
	e.moves = nil
	e.tree = NewTree(e.board, e.cfg)
}
