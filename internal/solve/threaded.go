package solve

import (
	"context"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nkasten/cubesolver"
	"github.com/nkasten/cubesolver/internal/ida"
)

// Threaded is backend B: shared-memory fan-out at the first ply, one
// goroutine per worker, joined once per tau-iteration with errgroup — the
// pattern the teacher's search examples use for intra-node parallel work.
type Threaded struct {
	workers int
}

// NewThreaded returns backend B with the given worker count. A count <= 0
// defaults to runtime.NumCPU().
func NewThreaded(workers int) *Threaded {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Threaded{workers: workers}
}

func (t *Threaded) Name() string {
	return "openmp"
}

func (t *Threaded) Available() bool {
	return t.workers > 0
}

func (t *Threaded) Solve(ctx context.Context, c *cube.Cube, opts Options) Result {
	start := time.Now()
	deadline := start.Add(opts.budget())
	maxDepth := opts.maxDepth()

	var nodeCount atomic.Int64
	tau := c.Heuristic()
	if c.IsSolved() {
		return Result{Backend: t.Name(), Success: true, Elapsed: time.Since(start)}
	}

	for {
		if ctx.Err() != nil {
			return Result{Backend: t.Name(), Nodes: nodeCount.Load(), Elapsed: time.Since(start)}
		}
		if time.Now().After(deadline) {
			return Result{Backend: t.Name(), TimedOut: true, Nodes: nodeCount.Load(), Elapsed: time.Since(start)}
		}
		if tau > maxDepth {
			return Result{Backend: t.Name(), Nodes: nodeCount.Load(), Elapsed: time.Since(start)}
		}
		opts.report(t.Name(), tau, nodeCount.Load())

		var found atomic.Bool
		var cancel atomic.Bool
		var pathMu sync.Mutex
		var bestPath []cube.Move

		var minMu sync.Mutex
		runningMin := math.MaxInt

		g := &errgroup.Group{}
		for worker := 0; worker < t.workers; worker++ {
			worker := worker
			g.Go(func() error {
				for j, m := range ida.BasicMoves {
					if j%t.workers != worker {
						continue
					}
					if cancel.Load() {
						return nil
					}

					branch := c.Clone()
					if err := branch.Apply(m); err != nil {
						continue
					}
					path := []cube.Move{m}
					res := ida.Search(branch, 1, tau, m, true, &path, &nodeCount, &cancel, ida.BasicMoves)

					switch res.Outcome {
					case ida.Solved:
						if found.CompareAndSwap(false, true) {
							pathMu.Lock()
							bestPath = append([]cube.Move(nil), path...)
							pathMu.Unlock()
							cancel.Store(true)
						}
					case ida.Next:
						minMu.Lock()
						if res.Bound < runningMin {
							runningMin = res.Bound
						}
						minMu.Unlock()
					}
				}
				return nil
			})
		}
		g.Wait() //nolint:errcheck // worker goroutines never return a non-nil error

		if found.Load() {
			return Result{
				Backend: t.Name(),
				Moves:   bestPath,
				Success: true,
				Nodes:   nodeCount.Load(),
				Elapsed: time.Since(start),
			}
		}
		if runningMin == math.MaxInt {
			return Result{Backend: t.Name(), Nodes: nodeCount.Load(), Elapsed: time.Since(start)}
		}
		tau = runningMin
	}
}
