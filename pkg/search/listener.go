package search

import "github.com/hexmcts/engine/pkg/hex"

// TreeStats is a snapshot of search progress, handed to a StatsListener's
// callbacks. It is the engine's sole observability surface: there is no
// separate logging layer for search internals, callers subscribe to these
// callbacks instead.
type TreeStats struct {
	Cycles     int
	TimeMs     int
	Cps        int
	MaxDepth   int
	BestMove   hex.Move
	Eval       float64
	StopReason StopReason
}

// ListenerFunc receives a TreeStats snapshot.
type ListenerFunc func(TreeStats)

// StatsListener is a set of optional callbacks a caller can attach to an
// Engine to observe a running search without polling it.
type StatsListener struct {
	onCycle ListenerFunc
	onDepth ListenerFunc
	onStop  ListenerFunc
}

// OnCycle attaches a callback invoked periodically while the search runs.
// Wiring this in significantly slows the search down (it evaluates the
// current pv every time), so use it for diagnostics, not production engine.
func (l *StatsListener) OnCycle(f ListenerFunc) *StatsListener {
	l.onCycle = f
	return l
}

// OnDepth attaches a callback invoked whenever the search reaches a new
// maximum tree depth.
func (l *StatsListener) OnDepth(f ListenerFunc) *StatsListener {
	l.onDepth = f
	return l
}

// OnStop attaches a callback invoked exactly once, when the search ends.
func (l *StatsListener) OnStop(f ListenerFunc) *StatsListener {
	l.onStop = f
	return l
}

func (l *StatsListener) invokeCycle(s TreeStats) {
	if l != nil && l.onCycle != nil {
		l.onCycle(s)
	}
}

func (l *StatsListener) invokeDepth(s TreeStats) {
	if l != nil && l.onDepth != nil {
		l.onDepth(s)
	}
}

func (l *StatsListener) invokeStop(s TreeStats) {
	if l != nil && l.onStop != nil {
		l.onStop(s)
	}
}
