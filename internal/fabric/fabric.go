// Package fabric provides an in-process collective messaging abstraction
// that stands in for an MPI communicator: a fixed set of in-process peers
// exchanging broadcasts and reductions through shared mutex/condition
// rendezvous points instead of processes and sockets.
// Any transport implementing the same four primitives could replace it
// without the caller noticing; this is the reference implementation because
// it needs no process orchestration to exercise in tests.
package fabric

import "errors"

// ErrInvalidPeerCount is returned by NewFabric for n <= 0.
var ErrInvalidPeerCount = errors.New("fabric: peer count must be positive")

// Command is what the root sends a worker peer over (*Peer).Recv to choose
// its next action: run a solve pass against the broadcast bound, or idle.
type Command struct {
	Run bool
}

// Fabric is a fixed set of peers sharing one set of rendezvous points for
// Broadcast, AllReduceMin, AllReduceMax, and Barrier, plus one buffered
// channel per peer for Commands. It has no notion of what the peers
// compute.
type Fabric struct {
	peers []*Peer
}

// NewFabric creates a Fabric with n peers, indexed 0..n-1. Rank 0 is
// conventionally the root: the one peer that owns the authoritative state
// and decides when to broadcast or idle the others.
func NewFabric(n int) (*Fabric, error) {
	if n <= 0 {
		return nil, ErrInvalidPeerCount
	}

	f := &Fabric{peers: make([]*Peer, n)}
	cmdCh := make([]chan Command, n)
	for i := 0; i < n; i++ {
		cmdCh[i] = make(chan Command, 1)
	}

	h := &hub{n: n}
	h.start()

	for i := 0; i < n; i++ {
		f.peers[i] = &Peer{
			rank:  i,
			n:     n,
			hub:   h,
			cmdCh: cmdCh,
		}
	}
	return f, nil
}

// Peer returns the handle for the given rank. Panics on an out-of-range
// rank, matching the teacher's index-trusting internal accessors — callers
// only ever pass ranks they themselves derived from NewFabric's n.
func (f *Fabric) Peer(rank int) *Peer {
	return f.peers[rank]
}

// Size returns the number of peers in the fabric.
func (f *Fabric) Size() int {
	return len(f.peers)
}
