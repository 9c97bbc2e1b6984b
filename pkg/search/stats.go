package search

import "sync/atomic"

// VirtualLoss is added to a node's visit and virtual-loss counters while a
// tree-parallel worker is traversing through it, and reversed on
// backpropagation. It discourages other workers from piling onto the same
// branch while this one is still simulating it.
const VirtualLoss int32 = 2

// NodeStats holds a node's Monte-Carlo counters. q is the compounded
// outcome with 10^-3 fixed-point precision, stored as uint64; n and
// virtualLoss are plain int32 counters. All three fields are only ever
// touched through atomic operations, since the search is tree-parallel.
type NodeStats struct {
	q           uint64
	n           int32
	virtualLoss int32
}

// Q returns the cumulative outcome for this node.
func (s *NodeStats) Q() float64 {
	return float64(atomic.LoadUint64(&s.q)) / 1e3
}

// AddQ adds a single rollout's outcome (in [0,1]) to the node.
func (s *NodeStats) AddQ(result float64) {
	atomic.AddUint64(&s.q, uint64(result*1e3))
}

// N returns the raw visit counter, which includes virtual loss. Use
// RealVisits for the count that excludes in-flight virtual loss.
func (s *NodeStats) N() int32 {
	return atomic.LoadInt32(&s.n)
}

// VirtualLoss returns the currently-applied virtual loss.
func (s *NodeStats) VirtualLoss() int32 {
	return atomic.LoadInt32(&s.virtualLoss)
}

// GetVvl reads visits and virtual loss together, retrying until it
// observes a pair that satisfies visits >= virtualLoss, since the two
// counters are updated by separate atomic adds.
func (s *NodeStats) GetVvl() (visits, virtualLoss int32) {
	for {
		visits = atomic.LoadInt32(&s.n)
		virtualLoss = atomic.LoadInt32(&s.virtualLoss)
		if virtualLoss <= visits {
			return visits, virtualLoss
		}
	}
}

// RealVisits returns visits minus virtual loss.
func (s *NodeStats) RealVisits() int32 {
	visits, vl := s.GetVvl()
	return visits - vl
}

// AddVvl adds to both counters at once.
func (s *NodeStats) AddVvl(visits, virtualLoss int32) {
	atomic.AddInt32(&s.virtualLoss, virtualLoss)
	atomic.AddInt32(&s.n, visits)
}

// RaveStats extends NodeStats with the AMAF (all-moves-as-first) counters
// RAVE blends in: q_rave/n_rave accumulate outcomes credited to this
// node's move whenever that move appeared anywhere in a rollout played
// below this node's parent, not only along the selected path.
type RaveStats struct {
	NodeStats

	qRave int32
	nRave int32
}

// QRAVE returns the AMAF outcome sum for this node's move.
func (s *RaveStats) QRAVE() float64 {
	return float64(atomic.LoadInt32(&s.qRave)) / 1e3
}

// NRAVE returns the AMAF playout count for this node's move.
func (s *RaveStats) NRAVE() int32 {
	return atomic.LoadInt32(&s.nRave)
}

// AddQRAVE adds an AMAF outcome.
func (s *RaveStats) AddQRAVE(result float64) {
	atomic.AddInt32(&s.qRave, int32(result*1e3))
}

// AddNRAVE increments the AMAF playout count.
func (s *RaveStats) AddNRAVE(n int32) {
	atomic.AddInt32(&s.nRave, n)
}
