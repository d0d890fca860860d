package cube

import (
	"math/rand"
	"testing"
)

func TestNewSolvedCubeIsSolved(t *testing.T) {
	c := NewSolvedCube()
	if !c.IsSolved() {
		t.Error("new cube should be solved")
	}
	if c.Heuristic() != 0 {
		t.Errorf("solved cube heuristic = %d, want 0", c.Heuristic())
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := NewSolvedCube()
	if err := c.Apply(R); err != nil {
		t.Fatalf("Apply(R): %v", err)
	}
	if c.IsSolved() {
		t.Error("cube should not be solved after R")
	}
}

func TestApplyInvalidMove(t *testing.T) {
	c := NewSolvedCube()
	err := c.Apply(Move{Face: "X", Turn: CW})
	if err != ErrInvalidMove {
		t.Errorf("Apply(invalid face) = %v, want ErrInvalidMove", err)
	}

	err = c.Apply(Move{Face: FaceR, Turn: 99})
	if err != ErrInvalidMove {
		t.Errorf("Apply(invalid turn) = %v, want ErrInvalidMove", err)
	}
}

func TestQuadrupleTurnReturnsToSolved(t *testing.T) {
	for _, f := range []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL} {
		c := NewSolvedCube()
		for i := 0; i < 4; i++ {
			if err := c.Apply(Move{Face: f, Turn: CW}); err != nil {
				t.Fatalf("Apply: %v", err)
			}
		}
		if !c.IsSolved() {
			t.Errorf("%s x4 should return to solved\n%s", f, c.String())
		}
	}
}

func TestDoubleTurnTwiceReturnsToSolved(t *testing.T) {
	c := NewSolvedCube()
	c.Apply(R2)
	c.Apply(R2)
	if !c.IsSolved() {
		t.Errorf("R2 R2 should return to solved\n%s", c.String())
	}
}

func TestInverseUndoesMove(t *testing.T) {
	for _, m := range QuarterTurns {
		c := NewSolvedCube()
		c.Apply(m)
		c.Apply(m.Inverse())
		if !c.IsSolved() {
			t.Errorf("%s then %s should return to solved", m, m.Inverse())
		}
	}
}

func TestSexyMoveSixTimesReturnsToSolved(t *testing.T) {
	c := NewSolvedCube()
	for i := 0; i < 6; i++ {
		if err := c.ApplyAll(SexyMove); err != nil {
			t.Fatalf("ApplyAll: %v", err)
		}
	}
	if !c.IsSolved() {
		t.Errorf("sexy move x6 should return to solved\n%s", c.String())
	}
}

func TestApplyAllStopsAtFirstError(t *testing.T) {
	c := NewSolvedCube()
	err := c.ApplyAll([]Move{R, U, {Face: "X", Turn: CW}, F})
	if err != ErrInvalidMove {
		t.Fatalf("ApplyAll error = %v, want ErrInvalidMove", err)
	}
	want := NewSolvedCube()
	want.Apply(R)
	want.Apply(U)
	if !c.Equal(want) {
		t.Error("ApplyAll should leave the cube mutated up to the failing move")
	}
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	c := NewSolvedCube()
	c.ApplyAll([]Move{R, U, FPrime, L2, D})

	s := c.Serialize()
	if len(s) != 54 {
		t.Fatalf("Serialize length = %d, want 54", len(s))
	}

	back, err := Deserialize(s)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if !c.Equal(back) {
		t.Error("Deserialize(Serialize(c)) should equal c")
	}
}

func TestDeserializeInvalidLength(t *testing.T) {
	_, err := Deserialize("too short")
	if err != ErrInvalidStateLength {
		t.Errorf("Deserialize(short) = %v, want ErrInvalidStateLength", err)
	}
}

func TestDeserializeInvalidColor(t *testing.T) {
	bad := make([]byte, 54)
	for i := range bad {
		bad[i] = 'W'
	}
	bad[10] = 'Z'
	_, err := Deserialize(string(bad))
	if err != ErrInvalidStateColor {
		t.Errorf("Deserialize(bad color) = %v, want ErrInvalidStateColor", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := NewSolvedCube()
	clone := c.Clone()
	clone.Apply(R)
	if c.IsSolved() != true {
		t.Error("mutating a clone should not affect the original")
	}
	if clone.Equal(c) {
		t.Error("clone should differ from original after a move")
	}
}

func TestHashStableAndDistinguishing(t *testing.T) {
	a := NewSolvedCube()
	b := NewSolvedCube()
	if a.Hash() != b.Hash() {
		t.Error("two solved cubes should hash equal")
	}
	b.Apply(R)
	if a.Hash() == b.Hash() {
		t.Error("a solved and a scrambled cube should not hash equal")
	}
}

func TestHeuristicIsZeroOnlyWhenSolved(t *testing.T) {
	c := NewSolvedCube()
	c.Apply(R)
	if c.Heuristic() == 0 {
		t.Error("heuristic should be nonzero on an unsolved cube")
	}
}

func TestScrambleAppliesRequestedMoveCount(t *testing.T) {
	c := NewSolvedCube()
	r := rand.New(rand.NewSource(1))
	moves := c.Scramble(25, r)
	if len(moves) != 25 {
		t.Fatalf("Scramble returned %d moves, want 25", len(moves))
	}
	replay := NewSolvedCube()
	if err := replay.ApplyAll(moves); err != nil {
		t.Fatalf("replaying scramble moves: %v", err)
	}
	if !replay.Equal(c) {
		t.Error("replaying the moves Scramble returned should reproduce its result")
	}
}

func TestScrambleIsDeterministicGivenSeed(t *testing.T) {
	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))
	m1 := NewSolvedCube().Scramble(30, r1)
	m2 := NewSolvedCube().Scramble(30, r2)
	for i := range m1 {
		if m1[i] != m2[i] {
			t.Fatalf("move %d differs: %v vs %v", i, m1[i], m2[i])
		}
	}
}

func TestParseMoveRoundTripsWithNotation(t *testing.T) {
	for _, m := range AllTurns {
		parsed, err := ParseMove(m.Notation())
		if err != nil {
			t.Fatalf("ParseMove(%s): %v", m.Notation(), err)
		}
		if parsed != m {
			t.Errorf("ParseMove(%s) = %v, want %v", m.Notation(), parsed, m)
		}
	}
}

func TestParseMoveRejectsInvalidNotation(t *testing.T) {
	for _, s := range []string{"", "X", "R3", "RR"} {
		if _, err := ParseMove(s); err != ErrInvalidNotation {
			t.Errorf("ParseMove(%q) = %v, want ErrInvalidNotation", s, err)
		}
	}
}

func TestParseMovesStopsOnFirstInvalidToken(t *testing.T) {
	_, err := ParseMoves("R U X U'")
	if err != ErrInvalidNotation {
		t.Errorf("ParseMoves with invalid token = %v, want ErrInvalidNotation", err)
	}
}

func TestFormatMovesInverseOfParseMoves(t *testing.T) {
	const s = "R U R' U'"
	moves, err := ParseMoves(s)
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if got := FormatMoves(moves); got != s {
		t.Errorf("FormatMoves(ParseMoves(%q)) = %q", s, got)
	}
}

func TestInverseMoveSequenceUndoesScramble(t *testing.T) {
	c := NewSolvedCube()
	r := rand.New(rand.NewSource(7))
	moves := c.Scramble(15, r)

	inverse := make([]Move, len(moves))
	for i, m := range moves {
		inverse[len(moves)-1-i] = m.Inverse()
	}
	if err := c.ApplyAll(inverse); err != nil {
		t.Fatalf("ApplyAll(inverse): %v", err)
	}
	if !c.IsSolved() {
		t.Errorf("applying the reversed inverse of a scramble should solve the cube\n%s", c.String())
	}
}

func TestOppositeFaceIsInvolution(t *testing.T) {
	for _, f := range faceOrder {
		if OppositeFace(OppositeFace(f)) != f {
			t.Errorf("OppositeFace(OppositeFace(%s)) != %s", f, f)
		}
		if OppositeFace(f) == f {
			t.Errorf("OppositeFace(%s) should not be itself", f)
		}
	}
}
