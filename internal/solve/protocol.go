package solve

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/nkasten/cubesolver"
	"github.com/nkasten/cubesolver/internal/fabric"
	"github.com/nkasten/cubesolver/internal/ida"
)

// firstPlyPass is the shape of the local search step each peer runs per
// iteration; Cluster passes one that is single-threaded, Hybrid one that
// fans out across its intra-peer thread count.
type firstPlyPass func(moves []cube.Move, base *cube.Cube, tau int, nodeCount *atomic.Int64) (found bool, path []cube.Move, localMin int)

// runCollectiveProtocol implements spec.md's backend C/D iteration exactly
// once, shared by Cluster and Hybrid: broadcast bound and state from rank
// 0, run pass over this peer's first-ply subset, all-reduce to find the
// next bound or a winner, and on a win, have the winner broadcast its
// solution length and then each move as a 2-byte token. Only rank 0 evaluates the stop condition (deadline,
// maxDepth); every other peer receives that decision over the broadcast
// rather than racing its own clock against the root's.
func runCollectiveProtocol(
	fab *fabric.Fabric,
	peers, rank int,
	seed *cube.Cube,
	opts Options,
	nodeCountOut *int64,
	pass firstPlyPass,
	backendName string,
) ([]cube.Move, bool, bool) {
	peer := fab.Peer(rank)
	var nodeCount atomic.Int64

	var deadline time.Time
	var maxDepth int
	var tau int
	var state string

	if rank == 0 {
		deadline = time.Now().Add(opts.budget())
		maxDepth = opts.maxDepth()
		tau = seed.Heuristic()
		state = seed.Serialize()
	}

	for {
		action := "continue"
		if rank == 0 {
			switch {
			case time.Now().After(deadline):
				action = "timeout"
			case tau > maxDepth:
				action = "exhausted"
			}
		}

		var payload []byte
		if rank == 0 {
			payload = []byte(fmt.Sprintf("%s|%d|%d|%s", state, tau, maxDepth, action))
		}
		msgs := peer.Broadcast(0, payload)
		parts := strings.SplitN(string(msgs[rank]), "|", 4)
		state, tau, maxDepth, action = parts[0], atoiOr(parts[1], 0), atoiOr(parts[2], 0), parts[3]

		if nodeCountOut != nil {
			*nodeCountOut = nodeCount.Load()
		}
		switch action {
		case "timeout":
			return nil, false, true
		case "exhausted":
			return nil, false, false
		}

		if rank == 0 {
			opts.report(backendName, tau, nodeCount.Load())
		}

		base, err := cube.Deserialize(state)
		if err != nil {
			return nil, false, false
		}

		found, path, localMin := pass(peerSubset(peers, rank), base, tau, &nodeCount)

		localBound := localMin
		rankFlag := -1
		if found {
			localBound = -1
			rankFlag = rank
		}

		newTau := peer.AllReduceMin([]int{localBound})
		winner := peer.AllReduceMax([]int{rankFlag})

		if nodeCountOut != nil {
			*nodeCountOut = nodeCount.Load()
		}

		if winner != -1 {
			var lenPayload []byte
			if rank == winner {
				lenPayload = []byte(strconv.Itoa(len(path)))
			}
			n := atoiOr(string(peer.Broadcast(winner, lenPayload)[rank]), 0)
			solved := make([]cube.Move, 0, n)
			for i := 0; i < n; i++ {
				var token []byte
				if rank == winner {
					token = []byte(fmt.Sprintf("%-2s", path[i].Notation()))
				}
				m, _ := cube.ParseMove(string(peer.Broadcast(winner, token)[rank]))
				solved = append(solved, m)
			}
			return solved, true, false
		}

		if newTau == math.MaxInt {
			return nil, false, false
		}

		if rank == 0 {
			tau = newTau
		}
	}
}

func atoiOr(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

// peerSubset returns the first-ply moves assigned to rank under the
// standard static partition {moves[j] : j mod peers == rank}.
func peerSubset(peers, rank int) []cube.Move {
	return subset(ida.BasicMoves, peers, rank)
}
