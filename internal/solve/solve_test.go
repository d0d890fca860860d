package solve

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/nkasten/cubesolver"
)

func verifySolves(t *testing.T, name string, c *cube.Cube, res Result) {
	t.Helper()
	if res.TimedOut {
		t.Fatalf("%s: timed out", name)
	}
	if !res.Success {
		t.Fatalf("%s: no solution found", name)
	}
	verify := c.Clone()
	if err := verify.ApplyAll(res.Moves); err != nil {
		t.Fatalf("%s: ApplyAll: %v", name, err)
	}
	if !verify.IsSolved() {
		t.Fatalf("%s: returned moves %v do not solve the cube", name, res.Moves)
	}
}

func scrambledCube(seed int64, k int) *cube.Cube {
	c := cube.NewSolvedCube()
	r := rand.New(rand.NewSource(seed))
	c.Scramble(k, r)
	return c
}

func TestSequentialSolvesShortScramble(t *testing.T) {
	c := scrambledCube(1, 4)
	res := NewSequential().Solve(context.Background(), c, Options{MaxDepth: 8, Budget: 20 * time.Second})
	verifySolves(t, "sequential", c, res)
}

func TestThreadedSolvesShortScramble(t *testing.T) {
	c := scrambledCube(2, 4)
	res := NewThreaded(4).Solve(context.Background(), c, Options{MaxDepth: 8, Budget: 20 * time.Second})
	verifySolves(t, "openmp", c, res)
}

func TestClusterSolvesShortScramble(t *testing.T) {
	c := scrambledCube(3, 3)
	cl, err := NewCluster(3)
	if err != nil {
		t.Fatalf("NewCluster: %v", err)
	}
	res := cl.Solve(context.Background(), c, Options{MaxDepth: 6, Budget: 20 * time.Second})
	verifySolves(t, "mpi", c, res)
}

func TestHybridSolvesShortScramble(t *testing.T) {
	c := scrambledCube(4, 3)
	h, err := NewHybrid(3, 2)
	if err != nil {
		t.Fatalf("NewHybrid: %v", err)
	}
	res := h.Solve(context.Background(), c, Options{MaxDepth: 6, Budget: 20 * time.Second})
	verifySolves(t, "hybrid", c, res)
}

func TestAllBackendsSolveSolvedCube(t *testing.T) {
	c := cube.NewSolvedCube()
	r := NewRegistry()
	for _, b := range r.Available() {
		res := b.Solve(context.Background(), c, Options{MaxDepth: 10, Budget: 5 * time.Second})
		if !res.Success || len(res.Moves) != 0 {
			t.Errorf("%s: expected an empty solution for an already-solved cube, got %v", b.Name(), res.Moves)
		}
	}
}

func TestNewClusterRejectsNonPositivePeerCount(t *testing.T) {
	if _, err := NewCluster(0); err == nil {
		t.Error("NewCluster(0) should fail")
	}
}

func TestRegistryGetUnknownBackend(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("quantum"); err != ErrBackendUnavailable {
		t.Errorf("Get(unknown) = %v, want ErrBackendUnavailable", err)
	}
}

func TestRegistryIDsIncludeSequential(t *testing.T) {
	r := NewRegistry()
	found := false
	for _, id := range r.IDs() {
		if id == "sequential" {
			found = true
		}
	}
	if !found {
		t.Error("registry should always register the sequential backend")
	}
}

func TestRunAllReturnsOneResultPerAvailableBackend(t *testing.T) {
	r := NewRegistry()
	c := scrambledCube(5, 3)
	results := RunAll(context.Background(), r, c, Options{MaxDepth: 6, Budget: 20 * time.Second})
	if len(results) != len(r.Available()) {
		t.Fatalf("RunAll returned %d results, want %d", len(results), len(r.Available()))
	}
	for _, res := range results {
		if !res.Success && !res.TimedOut {
			t.Errorf("%s: expected either a solution or a timeout for a short scramble", res.Backend)
		}
	}
}

func TestProgressChannelReceivesTicksDuringSolve(t *testing.T) {
	c := scrambledCube(6, 4)
	progress := make(chan Progress, 64)
	res := NewSequential().Solve(context.Background(), c, Options{MaxDepth: 8, Budget: 20 * time.Second, Progress: progress})
	verifySolves(t, "sequential", c, res)

	select {
	case p := <-progress:
		if p.Backend != "sequential" {
			t.Errorf("progress backend = %q, want %q", p.Backend, "sequential")
		}
	default:
		t.Error("expected at least one progress tick on the channel")
	}
}

func TestMaxBudgetCapsRequestedBudget(t *testing.T) {
	got := Options{Budget: 10 * time.Minute}.budget()
	if got != MaxBudget {
		t.Errorf("budget() = %v, want the %v ceiling", got, MaxBudget)
	}
}
