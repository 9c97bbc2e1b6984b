package search

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hexmcts/engine/pkg/hex"
)

// Tree is a tree-parallel MCTS+RAVE search over a Hex position. It owns the
// node tree and the search limiter; callers drive it through Search and
// re-root it through MakeMove as the game progresses.
type Tree struct {
	cfg      *Config
	Root     *Node
	limiter  *limiter
	listener *StatsListener

	cycles   atomic.Int64
	maxDepth atomic.Int64
	wg       sync.WaitGroup
}

// NewTree builds a search tree for board, pre-expanding the root.
func NewTree(board *hex.Board, cfg *Config) *Tree {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Tree{
		cfg:      cfg,
		Root:     newRoot(board),
		limiter:  newLimiter(),
		listener: &StatsListener{},
	}
}

// SetListener replaces the tree's stats listener.
func (t *Tree) SetListener(l *StatsListener) { t.listener = l }

// SetContext attaches a cancellation context to the running/next search.
func (t *Tree) SetContext(ctx context.Context) { t.limiter.SetContext(ctx) }

// Cycles returns the number of completed search cycles.
func (t *Tree) Cycles() int { return int(t.cycles.Load()) }

// MaxDepth returns the deepest selection/expansion path reached so far by
// worker 0 (the only worker that records depth).
func (t *Tree) MaxDepth() int { return int(t.maxDepth.Load()) }

// Search runs NumThreads tree-parallel workers against board until the
// movetime budget (cfg.SearchTime) elapses or the context is cancelled,
// then returns the move with the most real visits at the root, breaking
// ties uniformly at random.
func (t *Tree) Search(board *hex.Board) hex.Move {
	t.limiter.Reset(t.cfg.SearchTime)
	t.cycles.Store(0)
	t.maxDepth.Store(0)

	// A root re-rooted by MakeMove may never have been expanded.
	if !t.Root.Expanded() && !t.Root.Terminal() {
		expandIfNeeded(t.Root, board)
	}
	if t.Root.Terminal() || len(t.Root.Children()) == 0 {
		t.listener.invokeStop(t.snapshot())
		return hex.ResignMove()
	}

	threads := t.cfg.NumThreadsOrDefault()
	t.wg.Add(threads)
	for id := 0; id < threads; id++ {
		go t.worker(board, id, threads)
	}
	t.wg.Wait()

	return t.BestMove()
}

func (t *Tree) worker(board *hex.Board, id, threads int) {
	defer t.wg.Done()
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))

	for !t.limiter.Stopped() {
		depth := runCycle(t.Root, board, rng, t.cfg)
		t.cycles.Add(1)

		if id == 0 {
			if int64(depth) > t.maxDepth.Load() {
				t.maxDepth.Store(int64(depth))
				if t.listener.onDepth != nil {
					t.listener.invokeDepth(t.snapshot())
				}
			}
			if t.listener.onCycle != nil {
				t.listener.invokeCycle(t.snapshot())
			}
		}
	}

	if id == 0 {
		t.limiter.EvaluateStopReason()
		t.listener.invokeStop(t.snapshot())
	}
}

func (t *Tree) snapshot() TreeStats {
	best := t.BestChild()
	stats := TreeStats{
		Cycles:     t.Cycles(),
		TimeMs:     t.limiter.ElapsedMs(),
		MaxDepth:   t.MaxDepth(),
		StopReason: t.limiter.StopReason(),
	}
	stats.Cps = stats.Cycles * 1000 / max(stats.TimeMs, 1)
	if best != nil {
		stats.BestMove = best.Move
		if n := best.Stats.N(); n > 0 {
			stats.Eval = best.Stats.Q() / float64(n)
		}
	}
	return stats
}

// BestChild returns the root's child with the most real visits, breaking
// ties uniformly at random.
func (t *Tree) BestChild() *Node {
	children := t.Root.Children()
	if len(children) == 0 {
		return nil
	}

	var best []*Node
	maxVisits := int32(-1)
	for _, c := range children {
		v := c.Stats.RealVisits()
		switch {
		case v > maxVisits:
			maxVisits = v
			best = []*Node{c}
		case v == maxVisits:
			best = append(best, c)
		}
	}
	if len(best) == 0 {
		return nil
	}
	return best[rand.Intn(len(best))]
}

// BestMove returns the move of BestChild, or Resign if the root has no
// children (terminal position).
func (t *Tree) BestMove() hex.Move {
	if c := t.BestChild(); c != nil {
		return c.Move
	}
	return hex.ResignMove()
}

// MakeMove re-roots the tree at the child matching move, discarding every
// sibling subtree. If no such child exists (the move wasn't explored, or
// the tree hasn't been searched yet), the caller should rebuild the tree
// from the post-move board instead.
func (t *Tree) MakeMove(move hex.Move) bool {
	for _, c := range t.Root.Children() {
		if c.Move == move {
			c.Parent = nil
			t.Root = c
			return true
		}
	}
	return false
}
