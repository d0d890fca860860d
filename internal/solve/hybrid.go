package solve

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/nkasten/cubesolver"
	"github.com/nkasten/cubesolver/internal/fabric"
)

// Hybrid is backend D: M fabric peers, each fanning its assigned first-ply
// subset out across N threads internally. Only each peer's own goroutine
// (the one running runCollectiveProtocol) ever touches the fabric; its
// intra-peer threads rendezvous with it through localFirstPlyPass's
// WaitGroup, never issuing a collective call themselves — the Go analogue
// of spec.md's single-messaging-thread requirement.
type Hybrid struct {
	fab            *fabric.Fabric
	peers          int
	threadsPerPeer int
}

// NewHybrid builds backend D with the given peer and intra-peer thread
// counts.
func NewHybrid(peers, threadsPerPeer int) (*Hybrid, error) {
	fab, err := fabric.NewFabric(peers)
	if err != nil {
		return nil, err
	}
	if threadsPerPeer <= 0 {
		threadsPerPeer = 1
	}
	h := &Hybrid{fab: fab, peers: peers, threadsPerPeer: threadsPerPeer}
	for rank := 1; rank < peers; rank++ {
		go h.workerLoop(rank)
	}
	return h, nil
}

func (h *Hybrid) Name() string {
	return "hybrid"
}

func (h *Hybrid) Available() bool {
	return h.fab != nil
}

func (h *Hybrid) workerLoop(rank int) {
	peer := h.fab.Peer(rank)
	for {
		cmd := peer.Recv()
		if !cmd.Run {
			return
		}
		runCollectiveProtocol(h.fab, h.peers, rank, nil, Options{}, nil, h.intraPeerPass, h.Name())
	}
}

func (h *Hybrid) Solve(ctx context.Context, seed *cube.Cube, opts Options) Result {
	start := time.Now()
	for rank := 1; rank < h.peers; rank++ {
		h.fab.Peer(0).Command(rank, fabric.Command{Run: true})
	}

	var nodeCount int64
	moves, ok, timedOut := runCollectiveProtocol(h.fab, h.peers, 0, seed, opts, &nodeCount, h.intraPeerPass, h.Name())

	return Result{
		Backend:  h.Name(),
		Moves:    moves,
		Success:  ok,
		TimedOut: timedOut,
		Nodes:    nodeCount,
		Elapsed:  time.Since(start),
	}
}

func (h *Hybrid) intraPeerPass(moves []cube.Move, base *cube.Cube, tau int, nodeCount *atomic.Int64) (bool, []cube.Move, int) {
	return localFirstPlyPass(moves, base, tau, nodeCount, h.threadsPerPeer)
}
