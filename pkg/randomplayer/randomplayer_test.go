package randomplayer

import (
	"testing"

	"github.com/hexmcts/engine/pkg/hex"
)

func TestGenerateMovePlaysALegalEmptyCell(t *testing.T) {
	p := New(3, 3)
	mv := p.GenerateMove(hex.Black)
	if mv.Kind != hex.KindPlay {
		t.Fatalf("GenerateMove on an empty board returned %v, want a placement", mv)
	}
	if !p.board.OnBoard(mv.Pos) {
		t.Fatalf("GenerateMove played off-board position %v", mv.Pos)
	}
}

func TestGenerateMoveResignsWhenBoardIsFull(t *testing.T) {
	p := New(1, 1)
	mv := p.GenerateMove(hex.Black)
	if mv.Kind != hex.KindPlay {
		t.Fatalf("first move on 1x1 board should be a placement, got %v", mv)
	}
	// The single cell is now occupied and, on a 1x1 board, Black's placement
	// also connects Black's two edges, so the board already has a winner.
	next := p.GenerateMove(hex.White)
	if next.Kind != hex.KindResign {
		t.Fatalf("GenerateMove on a finished board = %v, want resign", next)
	}
}

func TestPlayMoveRejectsOccupiedCell(t *testing.T) {
	p := New(3, 3)
	pos := hex.Pos{1, 1}
	if !p.PlayMove(hex.PlayMove(hex.Black, pos)) {
		t.Fatal("first play on an empty cell should succeed")
	}
	if p.PlayMove(hex.PlayMove(hex.White, pos)) {
		t.Fatal("playing an occupied cell should fail")
	}
}

func TestUndoRestoresBoardState(t *testing.T) {
	p := New(3, 3)
	pos := hex.Pos{0, 0}
	p.PlayMove(hex.PlayMove(hex.Black, pos))
	if p.board.IsEmpty(pos) {
		t.Fatal("cell should be occupied after play")
	}
	p.Undo()
	if !p.board.IsEmpty(pos) {
		t.Fatal("cell should be empty again after undo")
	}
	if len(p.moves) != 0 {
		t.Fatalf("move history should be empty after undoing the only move, got %d", len(p.moves))
	}
}

func TestUndoOnEmptyHistoryIsANoOp(t *testing.T) {
	p := New(3, 3)
	p.Undo()
	if len(p.board.EmptyCells()) != 9 {
		t.Fatal("undo with no moves played should leave the board untouched")
	}
}

func TestSetBoardSizeResetsBoardAndHistory(t *testing.T) {
	p := New(3, 3)
	p.PlayMove(hex.PlayMove(hex.Black, hex.Pos{0, 0}))

	p.SetBoardSize(5, 5)
	if p.board.Cols != 5 || p.board.Rows != 5 {
		t.Fatalf("board size = %dx%d, want 5x5", p.board.Cols, p.board.Rows)
	}
	if len(p.moves) != 0 {
		t.Fatal("move history should be cleared on resize")
	}
	if len(p.board.EmptyCells()) != 25 {
		t.Fatal("resized board should be entirely empty")
	}
}

func TestNameAndVersionAreStable(t *testing.T) {
	p := New(3, 3)
	if p.Name() != "hexengine-random" {
		t.Fatalf("Name() = %q", p.Name())
	}
	if p.Version() != "1.0.0" {
		t.Fatalf("Version() = %q", p.Version())
	}
}
