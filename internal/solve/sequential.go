package solve

import (
	"context"
	"time"

	"github.com/nkasten/cubesolver"
	"github.com/nkasten/cubesolver/internal/ida"
)

// Sequential is backend A: a single worker running the kernel directly,
// no synchronization primitives at all.
type Sequential struct{}

// NewSequential returns the always-available single-worker backend.
func NewSequential() *Sequential {
	return &Sequential{}
}

func (s *Sequential) Name() string {
	return "sequential"
}

func (s *Sequential) Available() bool {
	return true
}

func (s *Sequential) Solve(ctx context.Context, c *cube.Cube, opts Options) Result {
	start := time.Now()
	report := func(threshold int, nodes int64) { opts.report(s.Name(), threshold, nodes) }
	moves, nodes, ok, timedOut := ida.IterativeDeepen(c.Clone(), opts.maxDepth(), opts.budget(), ida.BasicMoves, report)
	return Result{
		Backend:  s.Name(),
		Moves:    moves,
		Success:  ok,
		TimedOut: timedOut,
		Nodes:    nodes,
		Elapsed:  time.Since(start),
	}
}
