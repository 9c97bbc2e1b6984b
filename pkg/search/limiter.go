package search

import (
	"context"
	"sync/atomic"
)

// StopReason records why a search stopped, valid once the search has ended.
type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1 // stopped by Stop() or context cancellation
	StopMovetime  StopReason = 2 // the movetime budget elapsed
)

func (r StopReason) String() string {
	switch r {
	case StopInterrupt:
		return "Interrupt"
	case StopMovetime:
		return "Movetime"
	default:
		return "None"
	}
}

// limiter is checked by every search worker on each iteration of its main
// loop; once it reports stopped, workers wind down and the main thread
// reports the pv to the caller.
type limiter struct {
	timer  *timer
	stop   atomic.Bool
	reason StopReason
	ctx    context.Context
}

func newLimiter() *limiter {
	return &limiter{timer: newTimer(), ctx: context.Background()}
}

// SetContext attaches a context whose cancellation also stops the search.
func (l *limiter) SetContext(ctx context.Context) {
	if ctx != nil {
		l.ctx = ctx
	}
}

// Reset restarts the limiter for a new search with the given movetime
// budget in milliseconds (<=0 for unbounded).
func (l *limiter) Reset(movetimeMs int) {
	l.timer.Movetime(movetimeMs)
	l.timer.Reset()
	l.stop.Store(false)
	l.reason = StopNone
}

// SetStop requests the search to stop.
func (l *limiter) SetStop(v bool) { l.stop.Store(v) }

// Stopped reports whether the search should stop: either because someone
// called SetStop, the context was cancelled, or the movetime budget ran out.
func (l *limiter) Stopped() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load() || l.timer.IsEnd()
}

// EvaluateStopReason records why the search stopped; called once by the
// main search thread after the loop exits.
func (l *limiter) EvaluateStopReason() {
	switch {
	case l.stop.Load():
		l.reason = StopInterrupt
	case l.timer.IsEnd():
		l.reason = StopMovetime
	default:
		l.reason = StopNone
	}
}

// StopReason returns the reason recorded by EvaluateStopReason.
func (l *limiter) StopReason() StopReason { return l.reason }

// ElapsedMs returns milliseconds elapsed since Reset.
func (l *limiter) ElapsedMs() int { return l.timer.ElapsedMs() }
