// Package player defines the interface the text protocol drives: anything
// that can generate and accept moves on a Hex board, independent of how it
// actually picks them.
package player

import "github.com/hexmcts/engine/pkg/hex"

// Player is implemented by every move-generating backend the protocol
// layer can drive: the MCTS search engine, and the uniform-random
// fallback used in tests and benchmarks.
type Player interface {
	GenerateMove(color hex.Color) hex.Move
	PlayMove(m hex.Move) bool
	Undo()
	Board() *hex.Board
	Name() string
	Version() string
	SetBoardSize(cols, rows int)
}
