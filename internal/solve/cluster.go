package solve

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/nkasten/cubesolver"
	"github.com/nkasten/cubesolver/internal/fabric"
)

// Cluster is backend C: peer-to-peer fan-out across M fabric peers, the
// in-process stand-in for an MPI communicator. Rank 0 owns the
// authoritative cube state; every peer runs a single-threaded kernel over
// a disjoint slice of the first ply.
type Cluster struct {
	fab   *fabric.Fabric
	peers int
}

// NewCluster builds backend C with the given peer count. Worker peers
// (rank 1..peers-1) start a persistent loop that idles on
// (*fabric.Peer).Recv until the root dispatches a run command — the
// externalized lifetime control spec.md's backend C describes.
func NewCluster(peers int) (*Cluster, error) {
	fab, err := fabric.NewFabric(peers)
	if err != nil {
		return nil, err
	}
	c := &Cluster{fab: fab, peers: peers}
	for rank := 1; rank < peers; rank++ {
		go c.workerLoop(rank)
	}
	return c, nil
}

func (c *Cluster) Name() string {
	return "mpi"
}

func (c *Cluster) Available() bool {
	return c.fab != nil
}

func (c *Cluster) workerLoop(rank int) {
	peer := c.fab.Peer(rank)
	for {
		cmd := peer.Recv()
		if !cmd.Run {
			return
		}
		runCollectiveProtocol(c.fab, c.peers, rank, nil, Options{}, nil, singleThreadedPass, c.Name())
	}
}

func (c *Cluster) Solve(ctx context.Context, seed *cube.Cube, opts Options) Result {
	start := time.Now()
	for rank := 1; rank < c.peers; rank++ {
		c.fab.Peer(0).Command(rank, fabric.Command{Run: true})
	}

	var nodeCount int64
	moves, ok, timedOut := runCollectiveProtocol(c.fab, c.peers, 0, seed, opts, &nodeCount, singleThreadedPass, c.Name())

	return Result{
		Backend:  c.Name(),
		Moves:    moves,
		Success:  ok,
		TimedOut: timedOut,
		Nodes:    nodeCount,
		Elapsed:  time.Since(start),
	}
}

func singleThreadedPass(moves []cube.Move, base *cube.Cube, tau int, nodeCount *atomic.Int64) (bool, []cube.Move, int) {
	return localFirstPlyPass(moves, base, tau, nodeCount, 1)
}
