package search

import (
	"math"
	"math/rand"
	"testing"

	"github.com/hexmcts/engine/pkg/hex"
)

func TestValueUnvisitedChildIsInfinite(t *testing.T) {
	parent := NewNode(nil, hex.Move{})
	child := NewNode(parent, hex.PlayMove(hex.Black, hex.Pos{0, 0}))
	parent.Stats.AddVvl(10, 0)

	v := Value(child, parent.Stats.N(), DefaultConfig())
	if v != math.Inf(1) {
		t.Fatalf("Value() = %v, want +Inf", v)
	}
}

func TestValueZeroExplorationDoesNotForceUnvisitedChild(t *testing.T) {
	parent := NewNode(nil, hex.Move{})
	parent.Stats.AddVvl(10, 0)
	child := NewNode(parent, hex.PlayMove(hex.Black, hex.Pos{0, 0}))

	cfg := DefaultConfig().SetExplorationParam(0)
	v := Value(child, parent.Stats.N(), cfg)
	if math.IsInf(v, 1) {
		t.Fatalf("Value() with C == 0 on an unvisited child = %v, want a finite score", v)
	}
	if v != 0 {
		t.Fatalf("Value() with C == 0 and no RAVE data = %v, want 0", v)
	}
}

func TestSelectChildPrefersHigherMean(t *testing.T) {
	parent := NewNode(nil, hex.Move{})
	parent.Stats.AddVvl(20, 0)

	weak := NewNode(parent, hex.PlayMove(hex.Black, hex.Pos{0, 0}))
	weak.Stats.AddVvl(10, 0)
	weak.Stats.AddQ(2) // mean 0.2

	strong := NewNode(parent, hex.PlayMove(hex.Black, hex.Pos{1, 0}))
	strong.Stats.AddVvl(10, 0)
	strong.Stats.AddQ(9) // mean 0.9

	parent.Expand([]*Node{weak, strong})

	got := SelectChild(parent, DefaultConfig())
	if got != strong {
		t.Fatalf("SelectChild chose the weaker child")
	}
}

func TestRunCycleTerminatesOnTinyBoard(t *testing.T) {
	board := hex.NewBoard(2, 2)
	root := newRoot(board)
	rng := rand.New(rand.NewSource(1))
	cfg := DefaultConfig()

	for i := 0; i < 50; i++ {
		runCycle(root, board, rng, cfg)
	}

	if root.Stats.N() == 0 {
		t.Fatal("root should have accumulated visits")
	}
	var total int32
	for _, c := range root.Children() {
		total += c.Stats.RealVisits()
	}
	if total == 0 {
		t.Fatal("no child accumulated real visits")
	}
}

func TestMustPlaySavesTheBridge(t *testing.T) {
	b := hex.NewBoard(5, 5)
	// Black stones at b3=(1,2) and d2=(3,1) form a bridge with carriers
	// c2=(2,1) and c3=(2,2).
	b3 := hex.Pos{1, 2}
	d2 := hex.Pos{3, 1}
	c2 := hex.Pos{2, 1}
	c3 := hex.Pos{2, 2}

	b.Play(hex.PlayMove(hex.Black, b3))
	b.Play(hex.PlayMove(hex.White, hex.Pos{4, 4})) // filler, doesn't touch the bridge
	b.Play(hex.PlayMove(hex.Black, d2))
	// White plays one carrier; Black to move must answer with the other.
	b.Play(hex.PlayMove(hex.White, c3))

	rng := rand.New(rand.NewSource(1))
	mv := mustPlay(b, hex.Black, rng)
	if mv.Kind != hex.KindPlay || mv.Pos != c2 {
		t.Fatalf("mustPlay = %v, want Play{Black, %v}", mv, c2)
	}
}

func TestEngineGenerateMoveOnTinyBoardEventuallyResigns(t *testing.T) {
	cfg := DefaultConfig().SetNumThreads(1).SetSearchTime(1)
	e := NewEngine(2, 2, cfg)

	for i := 0; i < 4; i++ {
		if _, ok := e.Board().Winner(); ok {
			break
		}
		mv := e.GenerateMove(e.Board().ToPlay())
		if mv.Kind == hex.KindResign {
			break
		}
	}

	if _, ok := e.Board().Winner(); !ok {
		t.Fatal("a 2x2 board should be decided after at most 4 moves")
	}
	if mv := e.GenerateMove(e.Board().ToPlay()); mv.Kind != hex.KindResign {
		t.Fatalf("GenerateMove on a decided board = %v, want resign", mv)
	}
}

func TestEngineUndoRestoresBoardStateAndToPlay(t *testing.T) {
	cfg := DefaultConfig().SetNumThreads(1).SetSearchTime(1)
	e := NewEngine(5, 5, cfg)
	pos := hex.Pos{0, 0}

	if !e.PlayMove(hex.PlayMove(hex.Black, pos)) {
		t.Fatal("first play should succeed")
	}
	if e.Board().ToPlay() != hex.White {
		t.Fatalf("ToPlay() = %v, want White", e.Board().ToPlay())
	}

	e.Undo()
	if !e.Board().IsEmpty(pos) {
		t.Fatal("cell should be empty again after undo")
	}
	if e.Board().ToPlay() != hex.Black {
		t.Fatalf("ToPlay() after undoing a play = %v, want Black", e.Board().ToPlay())
	}
}

func TestEngineUndoAfterResignLeavesToPlayUntouched(t *testing.T) {
	cfg := DefaultConfig().SetNumThreads(1).SetSearchTime(1)
	e := NewEngine(5, 5, cfg)

	if !e.PlayMove(hex.PlayMove(hex.Black, hex.Pos{0, 0})) {
		t.Fatal("first play should succeed")
	}
	if e.Board().ToPlay() != hex.White {
		t.Fatalf("ToPlay() = %v, want White", e.Board().ToPlay())
	}

	if !e.PlayMove(hex.ResignMove()) {
		t.Fatal("resign should always succeed")
	}
	if e.Board().ToPlay() != hex.White {
		t.Fatalf("resign should not change ToPlay(), got %v", e.Board().ToPlay())
	}

	e.Undo()
	if e.Board().ToPlay() != hex.White {
		t.Fatalf("undoing a resign must not touch ToPlay(), got %v", e.Board().ToPlay())
	}
}

func TestEngineUndoAfterPassLeavesToPlayUntouched(t *testing.T) {
	cfg := DefaultConfig().SetNumThreads(1).SetSearchTime(1)
	e := NewEngine(5, 5, cfg)

	if !e.PlayMove(hex.PlayMove(hex.Black, hex.Pos{0, 0})) {
		t.Fatal("first play should succeed")
	}
	if !e.PlayMove(hex.PassMove()) {
		t.Fatal("pass should always succeed")
	}
	if e.Board().ToPlay() != hex.White {
		t.Fatalf("pass should not change ToPlay(), got %v", e.Board().ToPlay())
	}

	e.Undo()
	if e.Board().ToPlay() != hex.White {
		t.Fatalf("undoing a pass must not touch ToPlay(), got %v", e.Board().ToPlay())
	}
}

func TestEngineUndoOnEmptyHistoryIsANoOp(t *testing.T) {
	cfg := DefaultConfig().SetNumThreads(1).SetSearchTime(1)
	e := NewEngine(5, 5, cfg)
	e.Undo()
	if len(e.Board().EmptyCells()) != 25 {
		t.Fatal("undo with no moves played should leave the board untouched")
	}
}
