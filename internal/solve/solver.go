// Package solve wires the search kernel in internal/ida up to the four
// backends the service exposes: a sequential driver and three forms of
// parallel fan-out over it (threads, fabric peers, and both combined).
package solve

import (
	"context"
	"errors"
	"time"

	"github.com/nkasten/cubesolver"
)

// ErrBackendUnavailable is returned by Registry.Get for a backend whose
// prerequisites (worker pool, fabric) failed to construct, and reported by
// Backend.Available() for the same reason.
var ErrBackendUnavailable = errors.New("solve: backend unavailable")

// Progress is one tick of a backend's search, pushed on Options.Progress as
// the iterative-deepening threshold advances. Backend is filled in by
// whichever backend owns the channel; callers comparing several backends
// share one channel across goroutines.
type Progress struct {
	Backend   string
	Threshold int
	Nodes     int64
}

// Options configures a single Solve call.
type Options struct {
	// MaxDepth caps how far iterative deepening will raise its bound.
	MaxDepth int
	// Budget is the wall-clock ceiling for this call. Zero means the
	// package default (20s); RunAll caps every backend at the
	// engine-internal ceiling of 120s regardless of what's requested.
	Budget time.Duration
	// Progress, if non-nil, receives a Progress value at the top of every
	// iterative-deepening pass. Sends are non-blocking: a slow or absent
	// receiver never stalls the search.
	Progress chan<- Progress
}

func (o Options) report(backend string, threshold int, nodes int64) {
	if o.Progress == nil {
		return
	}
	select {
	case o.Progress <- Progress{Backend: backend, Threshold: threshold, Nodes: nodes}:
	default:
	}
}

// DefaultBudget is used when Options.Budget is zero.
const DefaultBudget = 20 * time.Second

// MaxBudget is the engine-internal ceiling no backend may exceed, even if
// a caller requests longer.
const MaxBudget = 120 * time.Second

func (o Options) budget() time.Duration {
	b := o.Budget
	if b <= 0 {
		b = DefaultBudget
	}
	if b > MaxBudget {
		b = MaxBudget
	}
	return b
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return 20
	}
	return o.MaxDepth
}

// Result is what every backend returns, regardless of how it searched.
// Success/TimedOut are never errors: "no solution within bound" and
// "wall-clock exceeded" are results, not failures.
type Result struct {
	Backend  string
	Moves    []cube.Move
	Success  bool
	TimedOut bool
	Nodes    int64
	Elapsed  time.Duration
}

// Backend is implemented by every solve strategy the registry knows about.
type Backend interface {
	// Name is the backend's external id (sequential, openmp, mpi, hybrid).
	Name() string
	// Available reports whether this backend's prerequisites are met.
	// A Backend that failed to construct its fabric or worker pool
	// reports false here rather than erroring on every Solve call.
	Available() bool
	// Solve runs this backend against a clone of c and returns once it
	// finds a solution, exhausts MaxDepth, or exceeds its budget. Only the
	// openmp backend also checks ctx, between iterations; the others do
	// not observe ctx.
	Solve(ctx context.Context, c *cube.Cube, opts Options) Result
}
