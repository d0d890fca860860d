// Package ida implements the iterative-deepening A* kernel shared by every
// solve backend. It knows nothing about threads, peers, or fabrics; callers
// drive it and own whatever concurrency they add around it.
package ida

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/nkasten/cubesolver"
)

// BasicMoves is the 12-quarter-turn set the kernel recurses over, in the
// teacher's predefined-move declaration order restricted to quarter turns.
var BasicMoves = cube.QuarterTurns

// AllMoves is the full 18-token alphabet, used by Scramble and by the HTTP
// facade's move/state endpoints rather than by the kernel itself.
var AllMoves = cube.AllTurns

// Outcome tags a kernel call's result.
type Outcome int

const (
	// Solved means the path stack the caller is holding is a solution.
	Solved Outcome = iota
	// Next carries the minimum f-value strictly greater than the bound
	// that was searched, for use as the next iteration's bound.
	Next
	// Abort means cancellation was observed; the caller must not publish
	// a partial path.
	Abort
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "SOLVED"
	case Next:
		return "NEXT"
	case Abort:
		return "ABORT"
	default:
		return "?"
	}
}

// Result pairs an Outcome with the NEXT bound it carries. Bound is
// meaningless for Solved and Abort.
type Result struct {
	Outcome Outcome
	Bound   int
}

// Search runs one bounded depth-first pass from c. g is the cost already
// accumulated to reach c; bound is tau; lastMove/hasLast identify the move
// that produced c (the empty case, hasLast == false, is the root ply, where
// both pruning rules are disabled). path accumulates the moves taken so the
// caller can recover a solution on Solved. nodes and cancel are shared
// across however many concurrent Search calls a backend runs; Search
// increments nodes once per call and polls cancel once per call, before any
// other work, so an observed cancellation returns Abort without recursing
// further down that branch.
func Search(
	c *cube.Cube,
	g, bound int,
	lastMove cube.Move,
	hasLast bool,
	path *[]cube.Move,
	nodes *atomic.Int64,
	cancel *atomic.Bool,
	moves []cube.Move,
) Result {
	if cancel.Load() {
		return Result{Outcome: Abort}
	}
	nodes.Add(1)

	f := g + c.Heuristic()
	if f > bound {
		return Result{Outcome: Next, Bound: f}
	}
	if c.IsSolved() {
		return Result{Outcome: Solved}
	}

	runningMin := math.MaxInt
	for _, m := range moves {
		if hasLast {
			// Same face: only a repeat of the same quarter turn is kept, so
			// half turns stay reachable and m never undoes lastMove.
			if m.Face == lastMove.Face && m != lastMove {
				continue
			}
			// Opposite faces commute: keep one order of each pair (B before
			// F, D before U, L before R).
			if cube.SameAxis(m.Face, lastMove.Face) && m.Face < lastMove.Face {
				continue
			}
		}

		if err := c.Apply(m); err != nil {
			continue
		}
		*path = append(*path, m)

		res := Search(c, g+1, bound, m, true, path, nodes, cancel, moves)
		if res.Outcome == Solved {
			return res
		}

		*path = (*path)[:len(*path)-1]
		c.Apply(m.Inverse()) //nolint:errcheck // m was just applied successfully

		switch res.Outcome {
		case Abort:
			return res
		case Next:
			if res.Bound < runningMin {
				runningMin = res.Bound
			}
		}
	}

	return Result{Outcome: Next, Bound: runningMin}
}

// ProgressFunc is called at the top of each iterative-deepening pass, before
// Search runs, with the threshold about to be searched and the node count
// accumulated so far. A nil ProgressFunc is a valid no-op.
type ProgressFunc func(threshold int, nodes int64)

// IterativeDeepen drives Search on a single worker: tau starts at the
// heuristic of c, advances to whatever NEXT bound each pass reports, and
// stops on Solved, on tau reaching +Inf (provably unsolvable within the
// model — impossible for a real cube but a closed-form exit all the same),
// on tau exceeding maxDepth, or on the wall-clock budget expiring. report,
// if non-nil, is called once per pass.
func IterativeDeepen(c *cube.Cube, maxDepth int, budget time.Duration, moves []cube.Move, report ProgressFunc) (path []cube.Move, nodes int64, ok bool, timedOut bool) {
	deadline := time.Now().Add(budget)
	var nodeCount atomic.Int64
	var cancel atomic.Bool

	tau := c.Heuristic()
	work := c.Clone()
	var stack []cube.Move

	for {
		if time.Now().After(deadline) {
			return nil, nodeCount.Load(), false, true
		}
		if tau > maxDepth {
			return nil, nodeCount.Load(), false, false
		}
		if report != nil {
			report(tau, nodeCount.Load())
		}

		stack = stack[:0]
		res := Search(work, 0, tau, cube.Move{}, false, &stack, &nodeCount, &cancel, moves)

		switch res.Outcome {
		case Solved:
			solution := make([]cube.Move, len(stack))
			copy(solution, stack)
			return solution, nodeCount.Load(), true, false
		case Abort:
			return nil, nodeCount.Load(), false, false
		case Next:
			if res.Bound == math.MaxInt {
				return nil, nodeCount.Load(), false, false
			}
			tau = res.Bound
		}
	}
}
