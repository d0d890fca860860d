package ida

import (
	"math/rand"
	"testing"
	"time"

	"github.com/nkasten/cubesolver"
)

func TestIterativeDeepenSolvesSolvedCube(t *testing.T) {
	c := cube.NewSolvedCube()
	path, _, ok, timedOut := IterativeDeepen(c, 10, 5*time.Second, BasicMoves, nil)
	if !ok || timedOut {
		t.Fatalf("ok=%v timedOut=%v, want ok=true timedOut=false", ok, timedOut)
	}
	if len(path) != 0 {
		t.Errorf("solved cube should need 0 moves, got %v", path)
	}
}

func TestIterativeDeepenSolvesSingleMoveScramble(t *testing.T) {
	for _, m := range BasicMoves {
		c := cube.NewSolvedCube()
		c.Apply(m)

		path, _, ok, timedOut := IterativeDeepen(c, 5, 10*time.Second, BasicMoves, nil)
		if !ok || timedOut {
			t.Fatalf("%s: ok=%v timedOut=%v", m, ok, timedOut)
		}
		if len(path) != 1 {
			t.Errorf("%s: expected a 1-move solution, got %v", m, path)
		}

		verify := c.Clone()
		verify.ApplyAll(path)
		if !verify.IsSolved() {
			t.Errorf("%s: applying returned path does not solve the cube", m)
		}
	}
}

func TestIterativeDeepenSolvesShortScrambles(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for trial := 0; trial < 5; trial++ {
		c := cube.NewSolvedCube()
		c.Scramble(4, r)
		if c.IsSolved() {
			continue
		}

		path, _, ok, timedOut := IterativeDeepen(c, 8, 30*time.Second, BasicMoves, nil)
		if timedOut {
			t.Fatalf("trial %d timed out", trial)
		}
		if !ok {
			t.Fatalf("trial %d: no solution found within depth 8", trial)
		}

		verify := c.Clone()
		if err := verify.ApplyAll(path); err != nil {
			t.Fatalf("trial %d: ApplyAll: %v", trial, err)
		}
		if !verify.IsSolved() {
			t.Errorf("trial %d: path %v does not solve the cube", trial, path)
		}
	}
}

func TestIterativeDeepenRespectsMaxDepth(t *testing.T) {
	c := cube.NewSolvedCube()
	r := rand.New(rand.NewSource(3))
	c.Scramble(20, r)

	_, _, ok, timedOut := IterativeDeepen(c, 1, 10*time.Second, BasicMoves, nil)
	if ok {
		t.Error("a deep scramble should not solve within maxDepth=1")
	}
	if timedOut {
		t.Error("hitting maxDepth should report ok=false without being a timeout")
	}
}

func TestIterativeDeepenRespectsWallClockBudget(t *testing.T) {
	c := cube.NewSolvedCube()
	r := rand.New(rand.NewSource(11))
	c.Scramble(20, r)

	_, _, ok, timedOut := IterativeDeepen(c, 20, time.Nanosecond, BasicMoves, nil)
	if ok {
		t.Error("an exhausted budget should not report ok=true")
	}
	if !timedOut {
		t.Error("an exhausted budget should report timedOut=true")
	}
}

func TestIterativeDeepenReportsProgressPerPass(t *testing.T) {
	c := cube.NewSolvedCube()
	r := rand.New(rand.NewSource(7))
	c.Scramble(4, r)

	var thresholds []int
	report := func(threshold int, nodes int64) {
		thresholds = append(thresholds, threshold)
	}

	_, _, _, timedOut := IterativeDeepen(c, 8, 30*time.Second, BasicMoves, report)
	if timedOut {
		t.Fatal("unexpected timeout")
	}
	if len(thresholds) == 0 {
		t.Fatal("report was never called")
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] < thresholds[i-1] {
			t.Errorf("threshold decreased: %v", thresholds)
		}
	}
}
