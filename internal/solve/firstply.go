package solve

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/nkasten/cubesolver"
	"github.com/nkasten/cubesolver/internal/ida"
)

// localFirstPlyPass runs one bounded kernel pass over moves, fanned out
// across threads goroutines (threads <= 1 degenerates to a single
// goroutine, the shape backend C's single-threaded-per-peer rule needs).
// It is the shared core of each peer's intra-peer fan-out in backends C
// and D; backend B runs its own copy of this loop in threaded.go. An
// already-solved base reports found with an empty path.
func localFirstPlyPass(moves []cube.Move, base *cube.Cube, tau int, nodeCount *atomic.Int64, threads int) (found bool, path []cube.Move, localMin int) {
	if threads <= 1 {
		threads = 1
	}
	if base.IsSolved() {
		return true, nil, 0
	}

	var foundFlag atomic.Bool
	var cancel atomic.Bool
	var pathMu sync.Mutex
	var bestPath []cube.Move
	var minMu sync.Mutex
	min := math.MaxInt

	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j, m := range moves {
				if j%threads != w {
					continue
				}
				if cancel.Load() {
					return
				}

				branch := base.Clone()
				if err := branch.Apply(m); err != nil {
					continue
				}
				localPath := []cube.Move{m}
				res := ida.Search(branch, 1, tau, m, true, &localPath, nodeCount, &cancel, ida.BasicMoves)

				switch res.Outcome {
				case ida.Solved:
					if foundFlag.CompareAndSwap(false, true) {
						pathMu.Lock()
						bestPath = append([]cube.Move(nil), localPath...)
						pathMu.Unlock()
						cancel.Store(true)
					}
				case ida.Next:
					minMu.Lock()
					if res.Bound < min {
						min = res.Bound
					}
					minMu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	return foundFlag.Load(), bestPath, min
}

// subset returns moves[j] for every j where j%n == rank, the static
// partition every parallel backend uses to divide the basic move set.
func subset(moves []cube.Move, n, rank int) []cube.Move {
	var out []cube.Move
	for j, m := range moves {
		if j%n == rank {
			out = append(out, m)
		}
	}
	return out
}
